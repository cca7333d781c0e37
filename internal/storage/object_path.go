package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func sanitizePathSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	builder := strings.Builder{}
	builder.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			builder.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			builder.WriteByte(ch + 32)
		case ch == '-', ch == '_':
			builder.WriteByte(ch)
		}
	}
	return builder.String()
}

func normalizeExtension(ext string) string {
	trimmed := strings.TrimSpace(ext)
	trimmed = strings.TrimPrefix(trimmed, ".")
	if trimmed == "" {
		return "bin"
	}
	return sanitizePathSegment(trimmed)
}

func buildObjectPath(category, baseName, ext string) string {
	now := time.Now().UTC()
	category = sanitizePathSegment(category)
	if category == "" {
		category = "misc"
	}
	normalizedExt := normalizeExtension(ext)
	base := sanitizeFileBase(baseName)
	if base == "" {
		base = fmt.Sprintf("%d", now.UnixNano())
	}
	datedir := fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day())
	filename := fmt.Sprintf("%s.%s", base, normalizedExt)
	return path.Join(category, datedir, filename)
}

// 部分系统的 mime 表没有登记文档类扩展名
var textContentTypes = map[string]string{
	"md":       "text/markdown; charset=utf-8",
	"markdown": "text/markdown; charset=utf-8",
	"txt":      "text/plain; charset=utf-8",
}

func detectContentType(ext string) string {
	normalized := normalizeExtension(ext)
	if typeName, ok := textContentTypes[normalized]; ok {
		return typeName
	}
	typeName := mime.TypeByExtension("." + normalized)
	if typeName == "" {
		return "application/octet-stream"
	}
	return typeName
}

func joinPrefix(prefix, key string) string {
	cleanPrefix := trimPrefix(prefix)
	if cleanPrefix == "" {
		return strings.TrimLeft(key, "/")
	}
	return path.Join(cleanPrefix, strings.TrimLeft(key, "/"))
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func sanitizeFileBase(value string) string {
	replaced := strings.ReplaceAll(strings.TrimSpace(value), " ", "-")
	sanitized := sanitizePathSegment(replaced)
	return strings.Trim(sanitized, "-_")
}

// PublicURL joins the configured public base with an object key.
// An empty base yields the bare key.
func PublicURL(base, key string) string {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if key == "" {
		return ""
	}
	if base == "" {
		return key
	}
	return base + "/" + key
}

// objectKey 生成带前缀的远端对象键
func objectKey(prefix string, opts SaveOptions) string {
	key := buildObjectPath(opts.Category, opts.BaseName, opts.Extension)
	if prefix != "" {
		key = joinPrefix(prefix, key)
	}
	return key
}

func checkPayload(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return errors.New("empty payload")
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func logUpload(driver, key string, size int) {
	logrus.WithFields(logrus.Fields{
		"driver": driver,
		"key":    key,
		"bytes":  size,
	}).Info("storage_object_saved")
}
