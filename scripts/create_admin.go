// 手动创建/重置管理员账号脚本
//
// 首次启动时用户表为空会自动写入配置中的管理员，此脚本用于后续
// 新增管理员或重置已有账号的密码。
//
// 用法: go run scripts/create_admin.go <email> <password> [name]

package main

import (
	"log"
	"os"

	"dept_form_backend/internal/config"
	"dept_form_backend/internal/model"
	"dept_form_backend/internal/util"
	"dept_form_backend/pkg/database"
	"dept_form_backend/pkg/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("用法: go run scripts/create_admin.go <email> <password> [name]")
	}
	email, password := os.Args[1], os.Args[2]
	name := "Admin"
	if len(os.Args) > 3 {
		name = os.Args[3]
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	digest, err := util.HashPassword(password)
	if err != nil {
		log.Fatalf("密码哈希失败: %v", err)
	}

	var user model.User
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		user.Password = digest
		user.Name = name
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("更新管理员失败: %v", err)
		}
		log.Printf("已重置管理员 %s 的密码", email)
	case err == gorm.ErrRecordNotFound:
		user = model.User{
			Email:    email,
			Password: digest,
			Name:     name,
			Role:     model.Admin,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("创建管理员失败: %v", err)
		}
		log.Printf("已创建管理员 %s", email)
	default:
		log.Fatalf("查询用户失败: %v", err)
	}
}
