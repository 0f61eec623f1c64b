// Package maxime 格言模块
// 每个页面请求随机挑选一条格言做装饰
package maxime

import (
	"errors"
	"math/rand"

	"gorm.io/gorm"

	model "marginalia/blog-service/internal/model/maxime"
	"marginalia/blog-service/pkg/response"
)

// Pick 纯函数：从格言列表中随机挑一条，空列表返回 nil
// rng 为 nil 时使用 math/rand 的全局源（内部带锁，可被并发请求共享）；
// 测试传入固定种子的 rng 以获得确定性
func Pick(maximes []model.Maxime, rng *rand.Rand) *model.Maxime {
	if len(maximes) == 0 {
		return nil
	}
	if rng == nil {
		return &maximes[rand.Intn(len(maximes))]
	}
	return &maximes[rng.Intn(len(maximes))]
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Random 随机取一条格言
func (s *Service) Random() (*model.Maxime, *response.BusinessError) {
	var maximes []model.Maxime
	if err := s.db.Find(&maximes).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询格言失败"),
		)
	}

	picked := Pick(maximes, nil)
	if picked == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("暂无格言"),
		)
	}
	return picked, nil
}

// RandomText 随机格言文本，无数据时返回空串（页面装饰可缺省）
func (s *Service) RandomText() string {
	picked, bizErr := s.Random()
	if bizErr != nil {
		return ""
	}
	return picked.Text
}

// List 全部格言
func (s *Service) List() ([]model.Maxime, *response.BusinessError) {
	var maximes []model.Maxime
	if err := s.db.Order("id ASC").Find(&maximes).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询格言失败"),
		)
	}
	return maximes, nil
}

// Create 新增格言
func (s *Service) Create(text string) (*model.Maxime, *response.BusinessError) {
	m := &model.Maxime{Text: text}
	if err := s.db.Create(m).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("创建格言失败"),
		)
	}
	return m, nil
}

// Delete 删除格言
func (s *Service) Delete(id uint) *response.BusinessError {
	var m model.Maxime
	if err := s.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("格言不存在"),
			)
		}
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询格言失败"),
		)
	}
	if err := s.db.Delete(&m).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("删除格言失败"),
		)
	}
	return nil
}
