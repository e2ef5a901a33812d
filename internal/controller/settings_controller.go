package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scales_practice_backend/internal/model"
	"scales_practice_backend/internal/service"
	"scales_practice_backend/internal/util"
)

// SettingsController 处理算法配置相关的API请求
type SettingsController struct {
	SettingsService *service.SettingsService
}

func NewSettingsController(settingsService *service.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settingsService}
}

// GetAlgorithmConfig godoc
// @Summary 获取算法配置
// @Description 当前的练习集生成算法配置，未保存过时返回默认值
// @Tags 设置
// @Produce json
// @Success 200 {object} util.Response "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/settings/algorithm [get]
func (c *SettingsController) GetAlgorithmConfig(ctx *gin.Context) {
	cfg, err := c.SettingsService.GetAlgorithmConfig()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, cfg)
}

// UpdateAlgorithmConfig godoc
// @Summary 更新算法配置
// @Description 保存算法配置；百分比越界会被收敛，槽位占比会被归一化
// @Tags 设置
// @Accept json
// @Produce json
// @Param request body model.AlgorithmConfig true "算法配置"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/settings/algorithm [put]
func (c *SettingsController) UpdateAlgorithmConfig(ctx *gin.Context) {
	var cfg model.AlgorithmConfig
	if err := ctx.ShouldBindJSON(&cfg); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	saved, err := c.SettingsService.UpdateAlgorithmConfig(cfg)
	if err != nil {
		if errors.Is(err, service.ErrNegativeTotalItems) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, saved)
}

// ResetAlgorithmConfig godoc
// @Summary 重置算法配置
// @Description 恢复为默认算法配置
// @Tags 设置
// @Produce json
// @Success 200 {object} util.Response "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/settings/algorithm/reset [post]
func (c *SettingsController) ResetAlgorithmConfig(ctx *gin.Context) {
	cfg, err := c.SettingsService.ResetAlgorithmConfig()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, cfg)
}
