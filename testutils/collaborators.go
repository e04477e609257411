package testutils

import (
	"context"
	"sync"

	"github.com/tradepilot-api/lib/filestore"
	"github.com/tradepilot-api/lib/mailer"
)

// Mailer records sent messages. A non-nil Err fails every send.
type Mailer struct {
	mu   sync.Mutex
	Sent []mailer.Message
	Err  error
}

func (m *Mailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// Last returns the most recent message, or the zero Message
func (m *Mailer) Last() mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return mailer.Message{}
	}
	return m.Sent[len(m.Sent)-1]
}

// Uploader records uploaded files and hands back predictable URLs
type Uploader struct {
	mu    sync.Mutex
	Files []filestore.File
	Err   error
}

func (u *Uploader) Upload(_ context.Context, file filestore.File) (*filestore.Object, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return nil, u.Err
	}
	u.Files = append(u.Files, file)

	name := file.Name
	if name == "" {
		name = "completion-document"
	}
	return &filestore.Object{
		URL:  "https://files.test/" + name,
		Name: name,
		Size: int64(len(file.Data)),
	}, nil
}
