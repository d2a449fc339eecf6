package model

import "time"

// DefaultCategoryName: категория, которую получает каждая новая loja.
const (
	DefaultCategoryName        = "Geral"
	DefaultCategoryDescription = "Categoria padrão para notas gerais da loja"
)

// categorias
type Category struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	// Уникальность имени в пределах loja (без учёта регистра) проверяет сервис.
	Name        string `gorm:"column:nome;type:varchar(100);not null"`
	Description string `gorm:"column:descricao;type:varchar(300)"`

	StoreID int64 `gorm:"column:loja_id;not null;index"`

	CreatedAt time.Time `gorm:"column:data_criacao;not null"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao"`

	Store *Store `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Notes []Note `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Category) TableName() string { return "categorias" }
