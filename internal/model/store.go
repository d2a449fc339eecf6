package model

import "time"

// lojas
type Store struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Name        string `gorm:"column:nome;type:varchar(100);not null"`
	Description string `gorm:"column:descricao;type:varchar(500)"`
	Address     string `gorm:"column:endereco;type:varchar(200)"`
	Phone       string `gorm:"column:telefone;type:varchar(20)"`

	CreatedAt time.Time `gorm:"column:data_criacao;not null"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao"`

	// Навигационные поля для Preload.
	Categories []Category `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Contacts   []Contact  `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Store) TableName() string { return "lojas" }
