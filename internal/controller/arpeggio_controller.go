package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scales_practice_backend/internal/service"
	"scales_practice_backend/internal/util"
)

// ArpeggioController 处理琶音目录相关的API请求
type ArpeggioController struct {
	CatalogService *service.CatalogService
}

func NewArpeggioController(catalogService *service.CatalogService) *ArpeggioController {
	return &ArpeggioController{CatalogService: catalogService}
}

// ListArpeggios godoc
// @Summary 获取琶音列表
// @Description 按调名/类型/八度/启用状态筛选琶音目录
// @Tags 琶音
// @Produce json
// @Param note query string false "调名 (A-G)"
// @Param type query string false "琶音类型"
// @Param octaves query int false "八度数"
// @Param enabled query bool false "启用状态"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/arpeggios [get]
func (c *ArpeggioController) ListArpeggios(ctx *gin.Context) {
	var request CatalogListRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	arpeggios, err := c.CatalogService.ListArpeggios(request.toFilter())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"arpeggios": arpeggios,
		"total":     len(arpeggios),
	})
}

// UpdateArpeggio godoc
// @Summary 更新琶音条目
// @Description 更新启用状态、权重、目标BPM或演奏法限定；target_bpm 传0表示清除
// @Tags 琶音
// @Accept json
// @Produce json
// @Param id path int true "琶音ID"
// @Param request body CatalogItemUpdateRequest true "更新字段"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "琶音不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/arpeggios/{id} [put]
func (c *ArpeggioController) UpdateArpeggio(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var request CatalogItemUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	arpeggio, err := c.CatalogService.UpdateArpeggio(id, service.CatalogItemUpdate{
		Enabled:          request.Enabled,
		Weight:           request.Weight,
		TargetBPM:        request.TargetBPM,
		ArticulationMode: request.ArticulationMode,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrArpeggioNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidArticulationMode):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"arpeggio": arpeggio,
	})
}

// BulkEnableArpeggios godoc
// @Summary 批量启用/停用琶音
// @Tags 琶音
// @Accept json
// @Produce json
// @Param request body BulkEnableRequest true "批量启用请求"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/arpeggios/bulk-enable [post]
func (c *ArpeggioController) BulkEnableArpeggios(ctx *gin.Context) {
	var request BulkEnableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.CatalogService.BulkEnableArpeggios(request.IDs, request.Enabled)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"updated": updated,
	})
}

// BulkArticulationArpeggios godoc
// @Summary 批量设置琶音演奏法限定
// @Tags 琶音
// @Accept json
// @Produce json
// @Param request body BulkArticulationRequest true "批量演奏法请求"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/arpeggios/bulk-articulation [post]
func (c *ArpeggioController) BulkArticulationArpeggios(ctx *gin.Context) {
	var request BulkArticulationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.CatalogService.BulkArticulationArpeggios(request.IDs, request.Mode)
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

// InitDatabase godoc
// @Summary 初始化目录数据
// @Description 按调名/变音/类型/八度组合生成完整目录，已有数据时不重复写入
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/init-database [post]
func (c *ArpeggioController) InitDatabase(ctx *gin.Context) {
	result, err := c.CatalogService.InitDatabase()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
