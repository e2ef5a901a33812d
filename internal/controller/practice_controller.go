package controller

import (
	"github.com/gin-gonic/gin"

	"scales_practice_backend/internal/model"
	"scales_practice_backend/internal/selector"
	"scales_practice_backend/internal/service"
	"scales_practice_backend/internal/util"
)

// PracticeController 处理练习集生成与练习记录相关的API请求
type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// RecordSessionRequest 提交练习记录请求
// swagger:model RecordSessionRequest
type RecordSessionRequest struct {
	Entries []service.PracticeEntryInput `json:"entries" binding:"required"`
}

// GenerateSet godoc
// @Summary 生成练习集
// @Description 按当前算法配置从启用条目中加权抽取一份练习集
// @Tags 练习
// @Produce json
// @Success 200 {object} util.Response "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/generate-set [post]
func (c *PracticeController) GenerateSet(ctx *gin.Context) {
	result, err := c.PracticeService.GeneratePracticeSet()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, generateSetResponse(result))
}

func generateSetResponse(result selector.Result) gin.H {
	items := result.Items
	if items == nil {
		items = []model.PracticeItem{}
	}

	resp := gin.H{
		"items":     items,
		"requested": result.Requested,
		"returned":  len(items),
	}
	switch {
	case result.EmptyCatalog:
		resp["message"] = "No scales or arpeggios are enabled"
	case result.Shortfall > 0:
		resp["shortfall"] = result.Shortfall
		resp["message"] = "Not enough enabled items to fill the requested set"
	}
	return resp
}

// RecordSession godoc
// @Summary 提交练习记录
// @Description 保存一次练习的逐条完成情况
// @Tags 练习
// @Accept json
// @Produce json
// @Param request body RecordSessionRequest true "练习记录"
// @Success 201 {object} util.Response "已创建"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/practice-session [post]
func (c *PracticeController) RecordSession(ctx *gin.Context) {
	var request RecordSessionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if len(request.Entries) == 0 {
		util.BadRequest(ctx, "entries 不能为空")
		return
	}

	for _, entry := range request.Entries {
		if entry.ItemType != model.ItemTypeScale && entry.ItemType != model.ItemTypeArpeggio {
			util.BadRequest(ctx, util.ErrInvalidItemType.Error())
			return
		}
	}

	summary, err := c.PracticeService.RecordSession(request.Entries)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"session": summary,
	})
}

// History godoc
// @Summary 获取练习历史
// @Description 按条目聚合的练习统计，按练习次数升序排列
// @Tags 练习
// @Produce json
// @Param item_type query string false "条目类型 (scale/arpeggio)"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/practice-history [get]
func (c *PracticeController) History(ctx *gin.Context) {
	itemType := ctx.Query("item_type")
	if itemType != "" && itemType != model.ItemTypeScale && itemType != model.ItemTypeArpeggio {
		util.BadRequest(ctx, util.ErrInvalidItemType.Error())
		return
	}

	history, err := c.PracticeService.History(itemType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"history": history,
		"total":   len(history),
	})
}
