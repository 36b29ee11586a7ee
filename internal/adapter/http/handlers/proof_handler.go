package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"phicoffee/internal/usecase/interfaces"
	"phicoffee/pkg"
)

// ProofHandler accepts the payment proof image upload that precedes an order
// submission. The returned public URL goes back to the client, which sends it
// in the order payload; if the order is never submitted the object stays
// orphaned (accepted gap).

type ProofHandler struct {
	storage interfaces.IProofStorage
}

func NewProofHandler(storage interfaces.IProofStorage) *ProofHandler {
	return &ProofHandler{storage: storage}
}

func (h *ProofHandler) UploadProof(c *gin.Context) {
	orderID := strings.TrimSpace(c.PostForm("orderId"))
	if orderID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "orderId is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "payment proof file is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	fileName := fmt.Sprintf("%s-%s%s", orderID, strings.ReplaceAll(uuid.NewString(), "-", "")[:8], ext)
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.storage.Upload(c.Request.Context(), fileName, contentType, file)
	if err != nil {
		log.Printf("[proof][handler] upload failed order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainError("PROOF_UPLOAD_FAILED", "Failed to upload payment proof", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proof][handler] upload success order_id=%s url=%s", orderID, url)

	c.JSON(http.StatusCreated, gin.H{"success": true, "url": url})
}
