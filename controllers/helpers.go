package controllers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/confirm"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/storage"
)

func paramID(c *gin.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

// uploadImage stores the "image" part of a multipart request, if one was
// attached. (url, nil) on success; ("", nil) when no file was sent;
// ("", err) when a file was sent but rejected or the write failed — the
// caller decides whether that blocks the save or just keeps the old image.
func uploadImage(c *gin.Context, store *storage.Store, bucket string) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	url, err := store.SaveUpload(bucket, fh)
	if err != nil {
		log.Printf("image upload to %s failed: %v", bucket, err)
		return "", err
	}
	return url, nil
}

// deleteWithConfirm runs a destructive action through the two-step gate.
// Without ?confirm=true the gate cancels and nothing is deleted.
func deleteWithConfirm(c *gin.Context, record any, action func() error) bool {
	gate := confirm.New()
	gate.Open(record, action)

	if c.Query("confirm") != "true" {
		gate.Cancel()
		resp.BadRequest(c, "confirmation required")
		return false
	}
	if err := gate.Confirm(); err != nil {
		resp.ServerError(c, err)
		return false
	}
	return true
}
