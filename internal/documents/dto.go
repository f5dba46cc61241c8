package documents

import "time"

type uploadResponse struct {
	DocumentID string `json:"documentId"`
	Status     string `json:"status"`
}

type summaryResponse struct {
	DocumentID   string    `json:"documentId"`
	FileName     string    `json:"fileName"`
	MimeType     string    `json:"mimeType"`
	Status       string    `json:"status"`
	ErrorMessage *string   `json:"errorMessage"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toUploadResponse(doc Document) uploadResponse {
	return uploadResponse{DocumentID: doc.ID, Status: doc.Status}
}

func toSummary(doc Document) summaryResponse {
	return summaryResponse{
		DocumentID:   doc.ID,
		FileName:     doc.FileName,
		MimeType:     doc.MimeType,
		Status:       doc.Status,
		ErrorMessage: doc.ErrorMessage,
		CreatedAt:    doc.CreatedAt,
	}
}
