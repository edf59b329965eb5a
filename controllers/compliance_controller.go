package controllers

import (
	"net/http"

	"subtrack_server/middleware"
	"subtrack_server/services"

	"github.com/gorilla/mux"
)

// ComplianceController handles compliance documents and their file uploads.
type ComplianceController struct {
	ComplianceService *services.ComplianceService
	S3Service         *services.S3Service
}

// NewComplianceController creates a new instance of ComplianceController.
func NewComplianceController(complianceService *services.ComplianceService, s3Service *services.S3Service) *ComplianceController {
	return &ComplianceController{ComplianceService: complianceService, S3Service: s3Service}
}

func (c *ComplianceController) CreateDocument(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	var input services.ComplianceInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := c.ComplianceService.CreateDocument(r.Context(), ownerID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, doc)
}

func (c *ComplianceController) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())

	docs, err := c.ComplianceService.ListDocuments(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, docs)
}

func (c *ComplianceController) GetDocument(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	docID := mux.Vars(r)["docId"]

	doc, err := c.ComplianceService.GetDocument(r.Context(), ownerID, docID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := map[string]interface{}{"document": doc}
	if doc.FileKey != "" && c.S3Service != nil {
		if url, err := c.S3Service.GenerateReadURL(doc.FileKey); err == nil {
			response["fileUrl"] = url
		}
	}
	respondJSON(w, http.StatusOK, response)
}

func (c *ComplianceController) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	docID := mux.Vars(r)["docId"]

	var input services.ComplianceInput
	if err := decodeAndValidate(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := c.ComplianceService.UpdateDocument(r.Context(), ownerID, docID, input)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (c *ComplianceController) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r.Context())
	docID := mux.Vars(r)["docId"]

	if err := c.ComplianceService.DeleteDocument(r.Context(), ownerID, docID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Document deleted"})
}

// GetUploadURL issues a time-limited presigned URL for a document file.
func (c *ComplianceController) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	if c.S3Service == nil {
		respondError(w, http.StatusInternalServerError, "File uploads are not configured")
		return
	}

	var payload struct {
		FileName string `json:"fileName" validate:"required"`
		FileType string `json:"fileType" validate:"required"`
	}
	if err := decodeAndValidate(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, key, err := c.S3Service.GenerateUploadURL(payload.FileName, payload.FileType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"uploadUrl": url,
		"fileKey":   key,
	})
}
