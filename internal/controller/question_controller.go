package controller

import (
	"strconv"

	"dept_form_backend/internal/service"
	"dept_form_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// List godoc
// @Summary 题目列表
// @Description 可按系部过滤，附带系部名称，按 sortOrder 排序
// @Tags 题目
// @Produce  json
// @Param   departmentId query int false "系部ID"
// @Success 200 {array} repository.QuestionWithDepartment
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	var departmentID uint
	if raw := ctx.Query("departmentId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			util.BadRequest(ctx, "Invalid departmentId")
			return
		}
		departmentID = uint(id)
	}

	questions, err := c.QuestionService.List(departmentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Get godoc
// @Summary 题目详情
// @Tags 题目
// @Produce  json
// @Param   id path int true "题目ID"
// @Success 200 {object} model.Question
// @Failure 404 {object} util.ErrorResponse "不存在"
// @Router /questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	question, err := c.QuestionService.Get(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// Create godoc
// @Summary 创建题目
// @Description select 类型必须带选项，其余类型选项忽略
// @Tags 题目
// @Accept  json
// @Produce  json
// @Param   body body service.QuestionInput true "题目信息"
// @Success 201 {object} model.Question
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var in service.QuestionInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(in)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// Update godoc
// @Summary 更新题目
// @Tags 题目
// @Accept  json
// @Produce  json
// @Param   id path int true "题目ID"
// @Param   body body service.QuestionInput true "题目信息"
// @Success 200 {object} model.Question
// @Failure 404 {object} util.ErrorResponse "不存在"
// @Router /questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var in service.QuestionInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Update(id, in)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// Delete godoc
// @Summary 删除题目
// @Tags 题目
// @Produce  json
// @Param   id path int true "题目ID"
// @Success 200 {object} object "成功"
// @Failure 404 {object} util.ErrorResponse "不存在"
// @Router /questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.QuestionService.Delete(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}
