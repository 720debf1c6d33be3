package controller

import (
	"errors"
	"strconv"
	"time"

	"dept_form_backend/internal/repository"
	"dept_form_backend/internal/service"
	"dept_form_backend/internal/util"
	"dept_form_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
	FormLinkService   *service.FormLinkService
	ExportService     *service.ExportService
}

func NewSubmissionController(submissionService *service.SubmissionService, formLinkService *service.FormLinkService, exportService *service.ExportService) *SubmissionController {
	return &SubmissionController{
		SubmissionService: submissionService,
		FormLinkService:   formLinkService,
		ExportService:     exportService,
	}
}

// GetForm godoc
// @Summary 公开表单定义
// @Description 按 token 取表单，供外部填报页渲染
// @Tags 填报
// @Produce  json
// @Param   token path string true "链接token"
// @Success 200 {object} service.FormDefinition
// @Failure 404 {object} util.ErrorResponse "链接无效"
// @Failure 410 {object} util.ErrorResponse "链接已过期"
// @Router /submit/{token} [get]
func (c *SubmissionController) GetForm(ctx *gin.Context) {
	definition, err := c.FormLinkService.Definition(ctx.Param("token"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, definition)
}

// Submit godoc
// @Summary 提交填报
// @Description 匿名公开接口。404=链接无效，410=链接过期，400=必答未答
// @Tags 填报
// @Accept  json
// @Produce  json
// @Param   token path string true "链接token"
// @Param   body body service.SubmissionInput true "填报内容"
// @Success 201 {object} object "成功"
// @Failure 400 {object} util.ErrorResponse "校验失败"
// @Failure 404 {object} util.ErrorResponse "链接无效"
// @Failure 410 {object} util.ErrorResponse "链接已过期"
// @Router /submit/{token} [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	// 先解析 token 再读请求体，无效链接不暴露校验细节
	link, err := c.FormLinkService.Resolve(ctx.Param("token"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrFormLinkNotFound):
			monitoring.SubmissionCounter.WithLabelValues("not_found").Inc()
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrFormLinkExpired):
			monitoring.SubmissionCounter.WithLabelValues("expired").Inc()
			util.Gone(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	var in service.SubmissionInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		monitoring.SubmissionCounter.WithLabelValues("invalid").Inc()
		util.BadRequest(ctx, err.Error())
		return
	}

	ip := util.ClientIP(ctx.Request)
	if _, err := c.SubmissionService.Submit(link, in, ip); err != nil {
		if util.IsValidationError(err) {
			monitoring.SubmissionCounter.WithLabelValues("invalid").Inc()
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.SubmissionCounter.WithLabelValues("accepted").Inc()
	util.Created(ctx, gin.H{"success": true})
}

// List godoc
// @Summary 填报记录列表
// @Description 扁平行（填报×答案），支持系部/链接/日期筛选
// @Tags 填报
// @Produce  json
// @Param   departmentId query int false "系部ID"
// @Param   formLinkId query int false "链接ID"
// @Param   dateFrom query string false "起始日期 YYYY-MM-DD"
// @Param   dateTo query string false "截止日期 YYYY-MM-DD（含当天）"
// @Success 200 {array} repository.SubmissionRow
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	filter, ok := submissionFilter(ctx)
	if !ok {
		return
	}

	rows, err := c.SubmissionService.List(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Export godoc
// @Summary 导出填报 CSV
// @Description 每条答案一行，列顺序固定：ID,Name,Email,Department,Form Link,Submitted At,Question,Answer
// @Tags 填报
// @Produce  text/csv
// @Param   department query string false "系部名称"
// @Param   formLinkId query int false "链接ID"
// @Param   dateFrom query string false "起始日期 YYYY-MM-DD"
// @Param   dateTo query string false "截止日期 YYYY-MM-DD（含当天）"
// @Success 200 {string} string "CSV 附件"
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /submissions/export [get]
func (c *SubmissionController) Export(ctx *gin.Context) {
	filter, ok := submissionFilter(ctx)
	if !ok {
		return
	}
	// 导出按系部名称筛选，与后台列表的 ID 筛选并存
	if department := ctx.Query("department"); department != "" && department != "all" {
		filter.DepartmentName = department
	}

	csv, filename, err := c.ExportService.ExportCSV(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(200, "text/csv", []byte(csv))
}

// submissionFilter 从查询参数组装类型化筛选条件；
// dateTo 含当天（补到 23:59:59）
func submissionFilter(ctx *gin.Context) (repository.SubmissionFilter, bool) {
	var filter repository.SubmissionFilter

	if raw := ctx.Query("departmentId"); raw != "" && raw != "all" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			util.BadRequest(ctx, "Invalid departmentId")
			return filter, false
		}
		filter.DepartmentID = uint(id)
	}
	if raw := ctx.Query("formLinkId"); raw != "" && raw != "all" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			util.BadRequest(ctx, "Invalid formLinkId")
			return filter, false
		}
		filter.FormLinkID = uint(id)
	}
	if raw := ctx.Query("dateFrom"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			util.BadRequest(ctx, "Invalid dateFrom")
			return filter, false
		}
		filter.DateFrom = &t
	}
	if raw := ctx.Query("dateTo"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			util.BadRequest(ctx, "Invalid dateTo")
			return filter, false
		}
		endOfDay := t.Add(24*time.Hour - time.Second)
		filter.DateTo = &endOfDay
	}

	return filter, true
}
