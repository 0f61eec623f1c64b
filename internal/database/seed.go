package database

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"marginalia/blog-service/config"
	"marginalia/blog-service/internal/model/maxime"
	"marginalia/blog-service/internal/model/user"
)

// 空库时写入的默认格言
var defaultMaximes = []string{
	"Il n'y a pas de faits, seulement des interprétations.",
	"Ce qui ne me tue pas me rend plus fort.",
	"La vie sans musique est tout simplement une erreur.",
}

// Seed 幂等的引导数据初始化
// 1. 若不存在管理员账号，则根据配置创建一个
// 2. 若格言表为空，则写入默认格言
// 重复执行不会产生新记录
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedMaximes(db)
}

func seedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&user.User{}).Where("role = ?", user.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	adminConf := config.Conf.Admin
	if adminConf.Email == "" || adminConf.Password == "" {
		log.Warn().Msg("未配置引导管理员账号，跳过创建")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminConf.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := adminConf.Name
	if name == "" {
		name = "Admin"
	}

	admin := user.User{
		Email:        adminConf.Email,
		PasswordHash: string(hashed),
		Name:         name,
		Role:         string(user.RoleAdmin),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", admin.Email).Msg("已创建引导管理员账号")
	return nil
}

func seedMaximes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&maxime.Maxime{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, text := range defaultMaximes {
		if err := db.Create(&maxime.Maxime{Text: text}).Error; err != nil {
			return err
		}
	}

	log.Info().Int("count", len(defaultMaximes)).Msg("已写入默认格言")
	return nil
}
