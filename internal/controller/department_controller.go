package controller

import (
	"errors"
	"strconv"

	"dept_form_backend/internal/service"
	"dept_form_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DepartmentController struct {
	DeptService *service.DepartmentService
}

func NewDepartmentController(deptService *service.DepartmentService) *DepartmentController {
	return &DepartmentController{DeptService: deptService}
}

// List godoc
// @Summary 系部列表
// @Tags 系部
// @Produce  json
// @Success 200 {array} model.Department
// @Router /departments [get]
func (c *DepartmentController) List(ctx *gin.Context) {
	departments, err := c.DeptService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, departments)
}

// Get godoc
// @Summary 系部详情
// @Tags 系部
// @Produce  json
// @Param   id path int true "系部ID"
// @Success 200 {object} model.Department
// @Failure 404 {object} util.ErrorResponse "不存在"
// @Router /departments/{id} [get]
func (c *DepartmentController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	department, err := c.DeptService.Get(id)
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, department)
}

// Create godoc
// @Summary 创建系部
// @Tags 系部
// @Accept  json
// @Produce  json
// @Param   body body service.DepartmentInput true "系部信息"
// @Success 201 {object} model.Department
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /departments [post]
func (c *DepartmentController) Create(ctx *gin.Context) {
	var in service.DepartmentInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	department, err := c.DeptService.Create(in)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, department)
}

// Update godoc
// @Summary 更新系部
// @Tags 系部
// @Accept  json
// @Produce  json
// @Param   id path int true "系部ID"
// @Param   body body service.DepartmentInput true "系部信息"
// @Success 200 {object} model.Department
// @Failure 404 {object} util.ErrorResponse "不存在"
// @Router /departments/{id} [put]
func (c *DepartmentController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var in service.DepartmentInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	department, err := c.DeptService.Update(id, in)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, department)
}

// Delete godoc
// @Summary 删除系部
// @Description 级联删除系部下的题目、链接和填报记录
// @Tags 系部
// @Produce  json
// @Param   id path int true "系部ID"
// @Success 200 {object} object "成功"
// @Failure 404 {object} util.ErrorResponse "不存在"
// @Router /departments/{id} [delete]
func (c *DepartmentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.DeptService.Delete(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// pathID 解析 :id 路径参数，非法时直接响应 400
func pathID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError 服务层错误映射到统一的错误分类
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case util.IsValidationError(err):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrDepartmentNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrFormLinkNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrFormLinkExpired):
		util.Gone(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
