package dto

type ImportOutput struct {
	Subjects int `json:"subjects"`
	Sessions int `json:"sessions"`
	Books    int `json:"books"`
}

type ExportOutput struct {
	FileName string
	Data     []byte
}
