package model

import (
	"time"

	"github.com/Leganyst/store-notes/internal/utils"
)

// UpcomingWindow: горизонт "ближайших" напоминаний.
const UpcomingWindow = 24 * time.Hour

// lembretes
type Reminder struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	Title       string    `gorm:"column:titulo;type:varchar(200)"`
	Description string    `gorm:"column:descricao;type:varchar(500)"`
	RemindAt    time.Time `gorm:"column:data_hora_lembrete;not null;index"`

	// Без default-тегов: GORM пропускает false при Create, значения выставляет сервис.
	Active   bool `gorm:"column:ativo;not null;index"`
	Notified bool `gorm:"column:notificado;not null;index"`

	NoteID int64 `gorm:"column:nota_id;not null;index"`

	CreatedAt time.Time `gorm:"column:data_criacao;not null"`
	UpdatedAt time.Time `gorm:"column:data_atualizacao"`

	Note *Note `gorm:"foreignKey:NoteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Reminder) TableName() string { return "lembretes" }

// IsUpcoming: активно, не отправлено и наступит в ближайшие 24 часа (границы не включаются).
func (r *Reminder) IsUpcoming(now time.Time) bool {
	if !r.Active || r.Notified {
		return false
	}
	return utils.WindowFrom(now, UpcomingWindow).Contains(r.RemindAt, false)
}
