package app

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrijs2005/userstore/internal/models"
)

// printer writes one JSON object per line.
type printer struct {
	enc *jsoniter.Encoder
}

func newPrinter(w io.Writer) *printer {
	return &printer{enc: jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)}
}

type userLine struct {
	Event string       `json:"event"`
	User  *models.User `json:"user,omitempty"`
	ID    int64        `json:"id,omitempty"`
}

func (p *printer) user(event string, u *models.User) error {
	return p.enc.Encode(userLine{Event: event, User: u})
}

func (p *printer) event(event string, id int64) error {
	return p.enc.Encode(userLine{Event: event, ID: id})
}

func (p *printer) list(users []*models.User) error {
	return p.enc.Encode(struct {
		Event string         `json:"event"`
		Users []*models.User `json:"users"`
	}{Event: "listed", Users: users})
}
