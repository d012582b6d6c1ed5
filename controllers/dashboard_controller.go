package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

// GET /admin/dashboard
func (ctl *DashboardController) Stats(c *gin.Context) {
	stats, err := ctl.Service.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
