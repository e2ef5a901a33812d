package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"scales_practice_backend/internal/repository"
	"scales_practice_backend/internal/service"
	"scales_practice_backend/internal/util"
)

// ScaleController 处理音阶目录相关的API请求
type ScaleController struct {
	CatalogService *service.CatalogService
}

func NewScaleController(catalogService *service.CatalogService) *ScaleController {
	return &ScaleController{CatalogService: catalogService}
}

// CatalogListRequest 目录列表筛选参数
// swagger:model CatalogListRequest
type CatalogListRequest struct {
	Note    string `form:"note"`
	Type    string `form:"type"`
	Octaves int    `form:"octaves" binding:"omitempty,min=1"`
	Enabled *bool  `form:"enabled"`
}

// CatalogItemUpdateRequest 单条目更新请求
// swagger:model CatalogItemUpdateRequest
type CatalogItemUpdateRequest struct {
	Enabled          *bool    `json:"enabled"`
	Weight           *float64 `json:"weight" binding:"omitempty,min=0"`
	TargetBPM        *int     `json:"target_bpm" binding:"omitempty,min=0"`
	ArticulationMode *string  `json:"articulation_mode"`
}

// BulkEnableRequest 批量启用/停用请求
// swagger:model BulkEnableRequest
type BulkEnableRequest struct {
	IDs     []uint `json:"ids" binding:"required"`
	Enabled bool   `json:"enabled"`
}

// BulkArticulationRequest 批量设置演奏法限定请求
// swagger:model BulkArticulationRequest
type BulkArticulationRequest struct {
	IDs  []uint `json:"ids" binding:"required"`
	Mode string `json:"mode" binding:"required"`
}

func (r CatalogListRequest) toFilter() repository.CatalogFilter {
	return repository.CatalogFilter{
		Note:    r.Note,
		Type:    r.Type,
		Octaves: r.Octaves,
		Enabled: r.Enabled,
	}
}

func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "ID无效")
		return 0, false
	}
	return uint(id), true
}

// ListScales godoc
// @Summary 获取音阶列表
// @Description 按调名/类型/八度/启用状态筛选音阶目录
// @Tags 音阶
// @Produce json
// @Param note query string false "调名 (A-G)"
// @Param type query string false "音阶类型"
// @Param octaves query int false "八度数"
// @Param enabled query bool false "启用状态"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/scales [get]
func (c *ScaleController) ListScales(ctx *gin.Context) {
	var request CatalogListRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	scales, err := c.CatalogService.ListScales(request.toFilter())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"scales": scales,
		"total":  len(scales),
	})
}

// UpdateScale godoc
// @Summary 更新音阶条目
// @Description 更新启用状态、权重、目标BPM或演奏法限定；target_bpm 传0表示清除
// @Tags 音阶
// @Accept json
// @Produce json
// @Param id path int true "音阶ID"
// @Param request body CatalogItemUpdateRequest true "更新字段"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "音阶不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/scales/{id} [put]
func (c *ScaleController) UpdateScale(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var request CatalogItemUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	scale, err := c.CatalogService.UpdateScale(id, service.CatalogItemUpdate{
		Enabled:          request.Enabled,
		Weight:           request.Weight,
		TargetBPM:        request.TargetBPM,
		ArticulationMode: request.ArticulationMode,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrScaleNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidArticulationMode):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"scale": scale,
	})
}

// BulkEnableScales godoc
// @Summary 批量启用/停用音阶
// @Tags 音阶
// @Accept json
// @Produce json
// @Param request body BulkEnableRequest true "批量启用请求"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/scales/bulk-enable [post]
func (c *ScaleController) BulkEnableScales(ctx *gin.Context) {
	var request BulkEnableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.CatalogService.BulkEnableScales(request.IDs, request.Enabled)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"updated": updated,
	})
}

// BulkArticulationScales godoc
// @Summary 批量设置音阶演奏法限定
// @Tags 音阶
// @Accept json
// @Produce json
// @Param request body BulkArticulationRequest true "批量演奏法请求"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/scales/bulk-articulation [post]
func (c *ScaleController) BulkArticulationScales(ctx *gin.Context) {
	var request BulkArticulationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.CatalogService.BulkArticulationScales(request.IDs, request.Mode)
	if err != nil {
		if errors.Is(err, util.ErrInvalidArticulationMode) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"updated": updated,
	})
}
