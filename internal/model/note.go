package model

import "time"

// Статус заметки.
type NoteStatus string

const (
	NoteStatusPending    NoteStatus = "PENDENTE"
	NoteStatusInProgress NoteStatus = "EM_ANDAMENTO"
	NoteStatusDone       NoteStatus = "CONCLUIDO"
)

// NoteStatuses: все статусы в порядке жизненного цикла.
var NoteStatuses = []NoteStatus{NoteStatusPending, NoteStatusInProgress, NoteStatusDone}

// notas
type Note struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Title    string     `gorm:"column:titulo;type:varchar(200);not null"`
	NoteDate time.Time  `gorm:"column:data_nota;not null;index"`
	Body     string     `gorm:"column:anotacoes;type:text"`
	Status   NoteStatus `gorm:"column:status;type:varchar(32);not null;index"`

	CategoryID int64 `gorm:"column:categoria_id;not null;index"`

	CreatedAt time.Time `gorm:"column:data_criacao;not null"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao"`

	Category  *Category  `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Reminders []Reminder `gorm:"foreignKey:NoteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Note) TableName() string { return "notas" }
