package dto

import (
	"strings"

	"github.com/yourusername/question-bank/internal/domain/entity"
)

// CategoryMap представляет категории в формате {id: type},
// как их отдает API ({"1": "Science", ...})
type CategoryMap map[uint]string

// NewCategoryMap создает карту категорий с типами как они хранятся
func NewCategoryMap(categories []entity.Category) CategoryMap {
	result := make(CategoryMap, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}
	return result
}

// NewLowercaseCategoryMap создает карту категорий с типами в нижнем регистре.
// Такой формат отдает GET /categories.
func NewLowercaseCategoryMap(categories []entity.Category) CategoryMap {
	result := make(CategoryMap, len(categories))
	for _, c := range categories {
		result[c.ID] = strings.ToLower(c.Type)
	}
	return result
}
