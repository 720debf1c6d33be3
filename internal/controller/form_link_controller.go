package controller

import (
	"dept_form_backend/internal/service"
	"dept_form_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FormLinkController struct {
	FormLinkService *service.FormLinkService
}

func NewFormLinkController(formLinkService *service.FormLinkService) *FormLinkController {
	return &FormLinkController{FormLinkService: formLinkService}
}

// List godoc
// @Summary 填报链接列表
// @Tags 链接
// @Produce  json
// @Success 200 {array} repository.FormLinkWithDepartment
// @Router /form-links [get]
func (c *FormLinkController) List(ctx *gin.Context) {
	links, err := c.FormLinkService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, links)
}

// Create godoc
// @Summary 生成填报链接
// @Description token 为加密安全的 48 位十六进制随机串，链接创建后不可修改
// @Tags 链接
// @Accept  json
// @Produce  json
// @Param   body body service.FormLinkInput true "链接信息"
// @Success 201 {object} object "含 token"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /form-links [post]
func (c *FormLinkController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var in service.FormLinkInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	link, err := c.FormLinkService.Create(in, claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"success": true, "token": link.Token})
}

// Delete godoc
// @Summary 删除填报链接
// @Description 级联删除链接下的填报记录
// @Tags 链接
// @Produce  json
// @Param   id path int true "链接ID"
// @Success 200 {object} object "成功"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /form-links/{id} [delete]
func (c *FormLinkController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.FormLinkService.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}
