package service

import (
	"strings"
)

// BuildSystemPrompt 组装系统指令：基础句 + 可选语气 + 可选篇幅，顺序固定
func BuildSystemPrompt(contentType, tone, length string) string {
	var builder strings.Builder
	builder.WriteString("You are a professional content writer. Generate high-quality ")
	builder.WriteString(strings.TrimSpace(contentType))
	builder.WriteString(" content.")

	if tone = strings.TrimSpace(tone); tone != "" {
		builder.WriteString(" Use a ")
		builder.WriteString(tone)
		builder.WriteString(" tone.")
	}
	if length = strings.TrimSpace(length); length != "" {
		builder.WriteString(" Keep it ")
		builder.WriteString(length)
		builder.WriteString(".")
	}
	return builder.String()
}
