package models

type WebPreview struct {
	Title        string `json:"title"`
	PreviewImage string `json:"previewImage"`
	Url          string `json:"url"`
	Description  string `json:"description"`
}
