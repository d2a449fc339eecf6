package model

import (
	"regexp"
	"time"
)

// Должность контакта.
type Role string

const (
	RoleManager     Role = "GERENTE"
	RoleOwner       Role = "PROPRIETARIO"
	RoleSalesperson Role = "VENDEDOR"
)

// Roles: все допустимые должности в порядке объявления.
var Roles = []Role{RoleManager, RoleOwner, RoleSalesperson}

// RegistrationPattern: формат matricula: "T" и ровно 7 цифр.
var RegistrationPattern = regexp.MustCompile(`^T\d{7}$`)

// contatos
type Contact struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Name         string `gorm:"column:nome;type:varchar(255);not null"`
	Registration string `gorm:"column:matricula;type:varchar(8);not null;uniqueIndex"`
	Role         Role   `gorm:"column:cargo;type:varchar(32);not null;index"`
	Phone        string `gorm:"column:telefone;type:varchar(255)"`
	Email        string `gorm:"column:email;type:varchar(255);index"`
	Notes        string `gorm:"column:observacoes;type:text"`

	StoreID int64 `gorm:"column:loja_id;not null;index"`

	CreatedAt time.Time `gorm:"column:data_criacao"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao"`

	Store *Store `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Contact) TableName() string { return "contatos" }
