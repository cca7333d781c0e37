package entity

// ProjectCreateRequest projects.create 的输入
type ProjectCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ContentType string  `json:"content_type" binding:"required"`
}

// ContentGenerateRequest content.generate 的输入
type ContentGenerateRequest struct {
	ProjectID  uint   `json:"project_id" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Prompt     string `json:"prompt" binding:"required"`
	TemplateID *uint  `json:"template_id"`
	Tone       string `json:"tone"`
	Length     string `json:"length"`
}

// ContentUpdateRequest content.update 的输入，未提供的字段保持不变
type ContentUpdateRequest struct {
	Content *string `json:"content"`
	Title   *string `json:"title"`
	Status  *string `json:"status" binding:"omitempty,oneof=draft published archived"`
}

// ContentRegenerateRequest content.regenerate 的输入
type ContentRegenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Tone   string `json:"tone"`
	Length string `json:"length"`
}

// SuccessResponse 通用成功确认
type SuccessResponse struct {
	Success bool `json:"success"`
}

// GeneratedTextResponse content.generate / content.regenerate 的返回
type GeneratedTextResponse struct {
	Success bool   `json:"success"`
	Content string `json:"content"`
}

// ContentExportResponse content.export 的返回
type ContentExportResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
	URL     string `json:"url"`
}

type ProjectListResponse struct {
	Projects []DbProject `json:"projects"`
}

type ContentListResponse struct {
	Contents []DbContent `json:"contents"`
}

type TemplateListResponse struct {
	Templates []DbTemplate `json:"templates"`
}
