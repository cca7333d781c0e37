package entity

// ContentUpdates 生成内容的部分更新字段，nil 表示保持不变
type ContentUpdates struct {
	Title   *string
	Content *string
	Prompt  *string
	Status  *ContentStatus
	Version *int
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u ContentUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Content != nil {
		updates["content"] = *u.Content
	}
	if u.Prompt != nil {
		updates["prompt"] = *u.Prompt
	}
	if u.Status != nil {
		updates["status"] = string(*u.Status)
	}
	if u.Version != nil {
		updates["version"] = *u.Version
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u ContentUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
