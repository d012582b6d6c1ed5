package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

type SettingController struct {
	Service *services.SettingService
}

func NewSettingController(service *services.SettingService) *SettingController {
	return &SettingController{Service: service}
}

// GET /admin/settings and GET /settings (the public site reads the same map)
func (ctl *SettingController) Get(c *gin.Context) {
	settings, err := ctl.Service.GetAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, settings)
}

// PUT /admin/settings — the whole map is upserted as a batch.
func (ctl *SettingController) Put(c *gin.Context) {
	var values map[string]string
	if err := c.ShouldBindJSON(&values); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.UpsertBatch(values); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "settings updated"})
}
