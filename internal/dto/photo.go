package dto

type PhotoResponse struct {
	ID        string `json:"id"`
	WeddingID string `json:"wedding_id"`
	Caption   string `json:"caption"`
	Album     string `json:"album"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	FileURL   string `json:"file_url"`
	CreatedAt string `json:"created_at"`
}
