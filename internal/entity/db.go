package entity

import (
	"scribe/internal/entity/common"
)

// Type aliases for common types
type StringArray = common.StringArray

// Tables 返回需要自动迁移的全部表模型
func Tables() []interface{} {
	return []interface{}{
		&DbUser{},
		&DbProject{},
		&DbContent{},
		&DbTemplate{},
	}
}
