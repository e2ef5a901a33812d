package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"scales_practice_backend/internal/service"
	"scales_practice_backend/internal/util"
)

// SelectionSetController 处理命名预设相关的API请求
type SelectionSetController struct {
	SelectionSetService *service.SelectionSetService
}

func NewSelectionSetController(selectionSetService *service.SelectionSetService) *SelectionSetController {
	return &SelectionSetController{SelectionSetService: selectionSetService}
}

// CreateSelectionSetRequest 新建预设请求，内容取自当前启用组合
// swagger:model CreateSelectionSetRequest
type CreateSelectionSetRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateSelectionSetRequest 更新预设请求
// swagger:model UpdateSelectionSetRequest
type UpdateSelectionSetRequest struct {
	Name              *string `json:"name"`
	ScaleIDs          []uint  `json:"scale_ids"`
	ArpeggioIDs       []uint  `json:"arpeggio_ids"`
	UpdateFromCurrent bool    `json:"update_from_current"`
}

// ListSelectionSets godoc
// @Summary 获取预设列表
// @Tags 预设
// @Produce json
// @Success 200 {object} util.Response "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/selection-sets [get]
func (c *SelectionSetController) ListSelectionSets(ctx *gin.Context) {
	sets, err := c.SelectionSetService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"selection_sets": sets,
		"total":          len(sets),
	})
}

// GetActiveSelectionSet godoc
// @Summary 获取当前激活的预设
// @Description 没有激活预设时 active 为 null
// @Tags 预设
// @Produce json
// @Success 200 {object} util.Response "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/selection-sets/active [get]
func (c *SelectionSetController) GetActiveSelectionSet(ctx *gin.Context) {
	set, err := c.SelectionSetService.GetActive()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"active": set,
	})
}

// CreateSelectionSet godoc
// @Summary 新建预设
// @Description 把当前启用的音阶/琶音保存为命名预设
// @Tags 预设
// @Accept json
// @Produce json
// @Param request body CreateSelectionSetRequest true "预设名称"
// @Success 201 {object} util.Response "已创建"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "名称已存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/selection-sets [post]
func (c *SelectionSetController) CreateSelectionSet(ctx *gin.Context) {
	var request CreateSelectionSetRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	set, err := c.SelectionSetService.CreateFromCurrent(request.Name)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSelectionSetNameEmpty):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrSelectionSetNameTaken):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"selection_set": set,
	})
}

// UpdateSelectionSet godoc
// @Summary 更新预设
// @Description 改名或修改选择内容；update_from_current 为 true 时重新捕获当前启用组合
// @Tags 预设
// @Accept json
// @Produce json
// @Param id path int true "预设ID"
// @Param request body UpdateSelectionSetRequest true "更新字段"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "预设不存在"
// @Failure 409 {object} util.Response "名称已存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/selection-sets/{id} [put]
func (c *SelectionSetController) UpdateSelectionSet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var request UpdateSelectionSetRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	set, err := c.SelectionSetService.Update(id, service.SelectionSetUpdate{
		Name:              request.Name,
		ScaleIDs:          request.ScaleIDs,
		ArpeggioIDs:       request.ArpeggioIDs,
		UpdateFromCurrent: request.UpdateFromCurrent,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSelectionSetNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSelectionSetNameEmpty):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrSelectionSetNameTaken):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"selection_set": set,
	})
}

// DeleteSelectionSet godoc
// @Summary 删除预设
// @Tags 预设
// @Produce json
// @Param id path int true "预设ID"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "预设不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/selection-sets/{id} [delete]
func (c *SelectionSetController) DeleteSelectionSet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.SelectionSetService.Delete(id); err != nil {
		if errors.Is(err, util.ErrSelectionSetNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message": "预设删除成功",
	})
}

// LoadSelectionSet godoc
// @Summary 载入预设
// @Description 启用预设内的条目并停用其余全部条目，该预设被标记为激活
// @Tags 预设
// @Produce json
// @Param id path int true "预设ID"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "预设不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/selection-sets/{id}/load [post]
func (c *SelectionSetController) LoadSelectionSet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	result, err := c.SelectionSetService.Load(id)
	if err != nil {
		if errors.Is(err, util.ErrSelectionSetNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// DeactivateSelectionSets godoc
// @Summary 取消预设激活
// @Description 取消全部预设激活并停用所有条目
// @Tags 预设
// @Produce json
// @Success 200 {object} util.Response "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/selection-sets/deactivate [post]
func (c *SelectionSetController) DeactivateSelectionSets(ctx *gin.Context) {
	if err := c.SelectionSetService.DeactivateAll(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"message": "已取消预设激活",
	})
}
