package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dept_form_backend/internal/repository"
)

type ExportService struct {
	SubmissionRepo *repository.SubmissionRepository
}

func NewExportService(submissionRepo *repository.SubmissionRepository) *ExportService {
	return &ExportService{SubmissionRepo: submissionRepo}
}

// csvHeader 列顺序固定，导入方依赖
const csvHeader = "ID,Name,Email,Department,Form Link,Submitted At,Question,Answer"

// ExportCSV 每条答案一行，同一填报的元数据重复出现。
// 文本列恒定加引号，内嵌引号双写转义
func (s *ExportService) ExportCSV(f repository.SubmissionFilter) (string, string, error) {
	rows, err := s.SubmissionRepo.ListRows(f)
	if err != nil {
		return "", "", err
	}

	var b strings.Builder
	b.WriteString(csvHeader)

	for _, row := range rows {
		name := row.Name
		if name == "" {
			name = "Anonymous"
		}
		var questionText string
		if row.QuestionText != nil {
			questionText = *row.QuestionText
		}

		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			strconv.FormatUint(uint64(row.ID), 10),
			csvQuote(name),
			csvQuote(row.Email),
			csvQuote(row.DepartmentName),
			csvQuote(row.FormLinkTitle),
			row.SubmittedAt.UTC().Format(time.RFC3339),
			csvQuote(questionText),
			csvQuote(answerText(row.Answer)),
		}, ","))
	}

	filename := fmt.Sprintf("submissions-%s.csv", time.Now().Format("2006-01-02"))
	return b.String(), filename, nil
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// answerText 答案列存的是 JSON 文本，导出时还原为可读值
func answerText(raw *string) string {
	if raw == nil || *raw == "" {
		return ""
	}

	var v interface{}
	if err := json.Unmarshal([]byte(*raw), &v); err != nil {
		return *raw
	}

	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []interface{}:
		parts := make([]string, len(t))
		for i, item := range t {
			if s, ok := item.(string); ok {
				parts[i] = s
			} else {
				encoded, _ := json.Marshal(item)
				parts[i] = string(encoded)
			}
		}
		return strings.Join(parts, ",")
	default:
		return *raw
	}
}
