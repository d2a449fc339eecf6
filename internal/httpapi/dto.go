package httpapi

import (
	"time"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/report"
	"github.com/Leganyst/store-notes/internal/service"
	"github.com/Leganyst/store-notes/internal/utils"
)

// ---- запросы ----

type storeRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	Endereco  string `json:"endereco"`
	Telefone  string `json:"telefone"`
}

func (req storeRequest) input() service.StoreInput {
	return service.StoreInput{
		Name:        req.Nome,
		Description: req.Descricao,
		Address:     req.Endereco,
		Phone:       req.Telefone,
	}
}

type categoryRequest struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	LojaID    int64  `json:"lojaId"`
	Loja      *idRef `json:"loja"`
}

func (req categoryRequest) input() service.CategoryInput {
	return service.CategoryInput{
		Name:        req.Nome,
		Description: req.Descricao,
		StoreID:     parentID(req.LojaID, req.Loja),
	}
}

type contactRequest struct {
	Nome        string `json:"nome"`
	Matricula   string `json:"matricula"`
	Cargo       string `json:"cargo"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	Observacoes string `json:"observacoes"`
	LojaID      int64  `json:"lojaId"`
	Loja        *idRef `json:"loja"`
}

func (req contactRequest) input() service.ContactInput {
	return service.ContactInput{
		Name:         req.Nome,
		Registration: req.Matricula,
		Role:         req.Cargo,
		Phone:        req.Telefone,
		Email:        req.Email,
		Notes:        req.Observacoes,
		StoreID:      parentID(req.LojaID, req.Loja),
	}
}

type noteRequest struct {
	Titulo      string `json:"titulo"`
	Anotacoes   string `json:"anotacoes"`
	DataNota    string `json:"dataNota"`
	Status      string `json:"status"`
	CategoriaID int64  `json:"categoriaId"`
	Categoria   *idRef `json:"categoria"`
}

func (a *API) noteInput(req noteRequest) (service.NoteInput, error) {
	date, err := a.parseTime("dataNota", req.DataNota)
	if err != nil {
		return service.NoteInput{}, err
	}
	return service.NoteInput{
		Title:      req.Titulo,
		Body:       req.Anotacoes,
		NoteDate:   date,
		Status:     req.Status,
		CategoryID: parentID(req.CategoriaID, req.Categoria),
	}, nil
}

type reminderRequest struct {
	Titulo           string `json:"titulo"`
	Descricao        string `json:"descricao"`
	DataHoraLembrete string `json:"dataHoraLembrete"`
	Ativo            *bool  `json:"ativo"`
	NotaID           int64  `json:"notaId"`
	Nota             *idRef `json:"nota"`
}

func (a *API) reminderInput(req reminderRequest) (service.ReminderInput, error) {
	at, err := a.parseTime("dataHoraLembrete", req.DataHoraLembrete)
	if err != nil {
		return service.ReminderInput{}, err
	}
	in := service.ReminderInput{
		Title:       req.Titulo,
		Description: req.Descricao,
		Active:      req.Ativo,
		NoteID:      parentID(req.NotaID, req.Nota),
	}
	if at != nil {
		in.RemindAt = *at
	}
	return in, nil
}

// ---- ответы ----

type storeResponse struct {
	ID              int64  `json:"id"`
	Nome            string `json:"nome"`
	Descricao       string `json:"descricao"`
	Endereco        string `json:"endereco"`
	Telefone        string `json:"telefone"`
	DataCriacao     string `json:"dataCriacao"`
	DataAtualizacao string `json:"dataAtualizacao"`
}

type storeWithCategoriesResponse struct {
	storeResponse
	Categorias []categoryResponse `json:"categorias"`
}

type categoryResponse struct {
	ID              int64  `json:"id"`
	Nome            string `json:"nome"`
	Descricao       string `json:"descricao"`
	LojaID          int64  `json:"lojaId"`
	DataCriacao     string `json:"dataCriacao"`
	DataAtualizacao string `json:"dataAtualizacao"`
}

type categoryWithNotesResponse struct {
	categoryResponse
	Notas []noteResponse `json:"notas"`
}

type contactResponse struct {
	ID              int64  `json:"id"`
	Nome            string `json:"nome"`
	Matricula       string `json:"matricula"`
	Cargo           string `json:"cargo"`
	Telefone        string `json:"telefone"`
	Email           string `json:"email"`
	Observacoes     string `json:"observacoes"`
	LojaID          int64  `json:"lojaId"`
	DataCriacao     string `json:"dataCriacao"`
	DataAtualizacao string `json:"dataAtualizacao"`
}

type noteResponse struct {
	ID              int64  `json:"id"`
	Titulo          string `json:"titulo"`
	DataNota        string `json:"dataNota"`
	Anotacoes       string `json:"anotacoes"`
	Status          string `json:"status"`
	CategoriaID     int64  `json:"categoriaId"`
	DataCriacao     string `json:"dataCriacao"`
	DataAtualizacao string `json:"dataAtualizacao"`
}

type noteWithRemindersResponse struct {
	noteResponse
	Lembretes []reminderResponse `json:"lembretes"`
}

type reminderResponse struct {
	ID               int64  `json:"id"`
	Titulo           string `json:"titulo"`
	Descricao        string `json:"descricao"`
	DataHoraLembrete string `json:"dataHoraLembrete"`
	Ativo            bool   `json:"ativo"`
	Notificado       bool   `json:"notificado"`
	NotaID           int64  `json:"notaId"`
	DataCriacao      string `json:"dataCriacao"`
	DataAtualizacao  string `json:"dataAtualizacao"`
}

type summaryResponse struct {
	TotalLojas        int64 `json:"totalLojas"`
	TotalCategorias   int64 `json:"totalCategorias"`
	NotasPendentes    int64 `json:"notasPendentes"`
	LembretesAtivos   int64 `json:"lembretesAtivos"`
	LembretesProximos int64 `json:"lembretesProximos"`
}

type noteStatsResponse struct {
	Pendentes   int64 `json:"pendentes"`
	EmAndamento int64 `json:"emAndamento"`
	Concluidas  int64 `json:"concluidas"`
	Total       int64 `json:"total"`
}

type storeStatsResponse struct {
	TotalCategorias  int64 `json:"totalCategorias"`
	NotasPendentes   int64 `json:"notasPendentes"`
	NotasEmAndamento int64 `json:"notasEmAndamento"`
	NotasConcluidas  int64 `json:"notasConcluidas"`
	TotalNotas       int64 `json:"totalNotas"`
	TotalLembretes   int64 `json:"totalLembretes"`
}

type recentActivityResponse struct {
	UltimasNotas      []noteResponse     `json:"ultimasNotas"`
	ProximosLembretes []reminderResponse `json:"proximosLembretes"`
}

type storeNoteCountResponse struct {
	LojaID int64  `json:"lojaId"`
	Nome   string `json:"nome"`
	Total  int64  `json:"total"`
}

type chartsResponse struct {
	DistribuicaoStatus map[string]int64         `json:"distribuicaoStatus"`
	NotasPorLoja       []storeNoteCountResponse `json:"notasPorLoja"`
}

type backfillResponse struct {
	Mensagem         string `json:"mensagem"`
	LojasAtualizadas int    `json:"lojasAtualizadas"`
}

// ---- маппинг ----

func (a *API) ts(t time.Time) string {
	return utils.FormatLocalDateTime(t, a.loc)
}

func (a *API) mapStore(s *model.Store) storeResponse {
	return storeResponse{
		ID:              s.ID,
		Nome:            s.Name,
		Descricao:       s.Description,
		Endereco:        s.Address,
		Telefone:        s.Phone,
		DataCriacao:     a.ts(s.CreatedAt),
		DataAtualizacao: a.ts(s.UpdatedAt),
	}
}

func (a *API) mapStoreWithCategories(s *model.Store) storeWithCategoriesResponse {
	return storeWithCategoriesResponse{storeResponse: a.mapStore(s), Categorias: a.mapCategories(s.Categories)}
}

func (a *API) mapStores(in []model.Store) []storeResponse {
	out := make([]storeResponse, 0, len(in))
	for i := range in {
		out = append(out, a.mapStore(&in[i]))
	}
	return out
}

func (a *API) mapCategory(c *model.Category) categoryResponse {
	return categoryResponse{
		ID:              c.ID,
		Nome:            c.Name,
		Descricao:       c.Description,
		LojaID:          c.StoreID,
		DataCriacao:     a.ts(c.CreatedAt),
		DataAtualizacao: a.ts(c.UpdatedAt),
	}
}

func (a *API) mapCategoryWithNotes(c *model.Category) categoryWithNotesResponse {
	return categoryWithNotesResponse{categoryResponse: a.mapCategory(c), Notas: a.mapNotes(c.Notes)}
}

func (a *API) mapCategories(in []model.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(in))
	for i := range in {
		out = append(out, a.mapCategory(&in[i]))
	}
	return out
}

func (a *API) mapContact(c *model.Contact) contactResponse {
	return contactResponse{
		ID:              c.ID,
		Nome:            c.Name,
		Matricula:       c.Registration,
		Cargo:           string(c.Role),
		Telefone:        c.Phone,
		Email:           c.Email,
		Observacoes:     c.Notes,
		LojaID:          c.StoreID,
		DataCriacao:     a.ts(c.CreatedAt),
		DataAtualizacao: a.ts(c.UpdatedAt),
	}
}

func (a *API) mapContacts(in []model.Contact) []contactResponse {
	out := make([]contactResponse, 0, len(in))
	for i := range in {
		out = append(out, a.mapContact(&in[i]))
	}
	return out
}

func (a *API) mapNote(n *model.Note) noteResponse {
	return noteResponse{
		ID:              n.ID,
		Titulo:          n.Title,
		DataNota:        a.ts(n.NoteDate),
		Anotacoes:       n.Body,
		Status:          string(n.Status),
		CategoriaID:     n.CategoryID,
		DataCriacao:     a.ts(n.CreatedAt),
		DataAtualizacao: a.ts(n.UpdatedAt),
	}
}

func (a *API) mapNoteWithReminders(n *model.Note) noteWithRemindersResponse {
	return noteWithRemindersResponse{noteResponse: a.mapNote(n), Lembretes: a.mapReminders(n.Reminders)}
}

func (a *API) mapNotes(in []model.Note) []noteResponse {
	out := make([]noteResponse, 0, len(in))
	for i := range in {
		out = append(out, a.mapNote(&in[i]))
	}
	return out
}

func (a *API) mapReminder(r *model.Reminder) reminderResponse {
	return reminderResponse{
		ID:               r.ID,
		Titulo:           r.Title,
		Descricao:        r.Description,
		DataHoraLembrete: a.ts(r.RemindAt),
		Ativo:            r.Active,
		Notificado:       r.Notified,
		NotaID:           r.NoteID,
		DataCriacao:      a.ts(r.CreatedAt),
		DataAtualizacao:  a.ts(r.UpdatedAt),
	}
}

func (a *API) mapReminders(in []model.Reminder) []reminderResponse {
	out := make([]reminderResponse, 0, len(in))
	for i := range in {
		out = append(out, a.mapReminder(&in[i]))
	}
	return out
}

func mapCharts(c *service.Charts) chartsResponse {
	dist := make(map[string]int64, len(c.StatusDistribution))
	for st, n := range c.StatusDistribution {
		dist[string(st)] = n
	}
	return chartsResponse{DistribuicaoStatus: dist, NotasPorLoja: mapStoreNoteCounts(c.NotesPerStore)}
}

func mapStoreNoteCounts(in []report.StoreNoteCount) []storeNoteCountResponse {
	out := make([]storeNoteCountResponse, 0, len(in))
	for _, c := range in {
		out = append(out, storeNoteCountResponse{LojaID: c.StoreID, Nome: c.Name, Total: c.Total})
	}
	return out
}
