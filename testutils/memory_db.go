// Package testutils provides in-memory stand-ins for the persistence and
// delivery collaborators used by services and handlers in tests.
package testutils

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tradepilot-api/models"
	"github.com/tradepilot-api/repositories"
)

// MemoryDB holds rows shared by the fake repositories. Setting Err makes
// every repository call fail with it.
type MemoryDB struct {
	mu           sync.Mutex
	users        map[string]models.User
	projects     map[string]models.Project
	bids         map[string]models.Bid
	deliverables []models.Deliverable
	Err          error
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		users:    make(map[string]models.User),
		projects: make(map[string]models.Project),
		bids:     make(map[string]models.Bid),
	}
}

func (db *MemoryDB) Users() *UserRepo               { return &UserRepo{db: db} }
func (db *MemoryDB) Projects() *ProjectRepo         { return &ProjectRepo{db: db} }
func (db *MemoryDB) Bids() *BidRepo                 { return &BidRepo{db: db} }
func (db *MemoryDB) Deliverables() *DeliverableRepo { return &DeliverableRepo{db: db} }

// Seed helpers insert rows directly and return them with IDs assigned

func (db *MemoryDB) SeedUser(u models.User) models.User {
	db.mu.Lock()
	defer db.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	db.users[u.ID] = u
	return u
}

func (db *MemoryDB) SeedProject(p models.Project) models.Project {
	db.mu.Lock()
	defer db.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = models.ProjectPending
	}
	p.CreatedAt = time.Now()
	p.Bids = nil
	db.projects[p.ID] = p
	return p
}

func (db *MemoryDB) SeedBid(b models.Bid) models.Bid {
	db.mu.Lock()
	defer db.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.BidStatus == "" {
		b.BidStatus = models.BidSubmitted
	}
	b.CreatedAt = time.Now()
	db.bids[b.ID] = b
	return b
}

// Project returns a stored project with its bids
func (db *MemoryDB) Project(id string) (models.Project, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	p, ok := db.projects[id]
	if ok {
		p.Bids = db.bidsFor(id)
	}
	return p, ok
}

func (db *MemoryDB) Bid(id string) (models.Bid, bool) {
	db.mu.Lock()
	defer db.mu.Unlock()
	b, ok := db.bids[id]
	return b, ok
}

func (db *MemoryDB) DeliverableCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.deliverables)
}

func (db *MemoryDB) bidsFor(projectID string) []models.Bid {
	var out []models.Bid
	for _, b := range db.bids {
		if b.ProjectID == projectID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// UserRepo is an in-memory services.UserRepository
type UserRepo struct{ db *MemoryDB }

func (r *UserRepo) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return r.db.Err
	}
	for _, u := range r.db.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.db.users[user.ID] = *user
	return nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	for _, u := range r.db.users {
		if u.Email == email {
			u.Bids = r.db.bidsBySeller(u.ID)
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	u, ok := r.db.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == repositories.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *UserRepo) FindProfile(_ context.Context, id string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	u, ok := r.db.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	for _, p := range r.db.projects {
		if p.BuyerID == id {
			u.ProjectsCreated = append(u.ProjectsCreated, p)
		}
		if p.SellerID != nil && *p.SellerID == id {
			u.ProjectsTaken = append(u.ProjectsTaken, p)
		}
	}
	u.Bids = r.db.bidsBySeller(id)
	return &u, nil
}

func (db *MemoryDB) bidsBySeller(sellerID string) []models.Bid {
	var out []models.Bid
	for _, b := range db.bids {
		if b.SellerID == sellerID {
			out = append(out, b)
		}
	}
	return out
}

// ProjectRepo is an in-memory services.ProjectRepository
type ProjectRepo struct{ db *MemoryDB }

func (r *ProjectRepo) Create(_ context.Context, project *models.Project) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return r.db.Err
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	stored := *project
	stored.Bids = nil
	r.db.projects[project.ID] = stored
	return nil
}

func (r *ProjectRepo) FindAll(_ context.Context) ([]models.Project, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	var out []models.Project
	for _, p := range r.db.projects {
		p.Bids = r.db.bidsFor(p.ID)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *ProjectRepo) FindByID(_ context.Context, id string) (*models.Project, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	p, ok := r.db.projects[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

// UpdateStatus mirrors the column changes of the GORM repository
func (r *ProjectRepo) UpdateStatus(_ context.Context, t repositories.StatusTransition) (*models.Project, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}

	p, ok := r.db.projects[t.ProjectID]
	if !ok {
		return nil, repositories.ErrNotFound
	}

	var bid *models.Bid
	if t.BidID != nil {
		b, ok := r.db.bids[*t.BidID]
		if !ok || b.ProjectID != t.ProjectID {
			return nil, repositories.ErrNotFound
		}
		bid = &b
	}

	p.Status = t.Status
	p.SelectedBid = nil
	switch {
	case t.Status == models.ProjectPending:
		p.SellerID = nil
	case bid != nil:
		sellerID := bid.SellerID
		p.SellerID = &sellerID
	}
	if bid != nil {
		bidID := bid.ID
		p.SelectedBid = &bidID
		bid.BidStatus = t.Status.BidStatus()
		r.db.bids[bid.ID] = *bid
	}
	if t.Document != nil {
		url, name, size, at := t.Document.URL, t.Document.Name, t.Document.Size, t.UploadedAt
		p.CompletionDocumentURL = &url
		p.CompletionDocumentName = &name
		p.CompletionDocumentSize = &size
		p.DocumentUploadedAt = &at
	}
	p.UpdatedAt = time.Now()
	r.db.projects[p.ID] = p

	p.Bids = r.db.bidsFor(p.ID)
	return &p, nil
}

// BidRepo is an in-memory services.BidRepository
type BidRepo struct{ db *MemoryDB }

func (r *BidRepo) Create(_ context.Context, bid *models.Bid) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return r.db.Err
	}
	if bid.ID == "" {
		bid.ID = uuid.NewString()
	}
	bid.CreatedAt = time.Now()
	bid.UpdatedAt = bid.CreatedAt
	r.db.bids[bid.ID] = *bid
	return nil
}

func (r *BidRepo) FindByProject(_ context.Context, projectID string) ([]models.Bid, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	bids := r.db.bidsFor(projectID)
	for i := range bids {
		if u, ok := r.db.users[bids[i].SellerID]; ok {
			seller := u
			bids[i].Seller = &seller
		}
	}
	return bids, nil
}

// DeliverableRepo is an in-memory services.DeliverableRepository
type DeliverableRepo struct{ db *MemoryDB }

func (r *DeliverableRepo) CreateAndComplete(_ context.Context, d *models.Deliverable) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return r.db.Err
	}

	p, ok := r.db.projects[d.ProjectID]
	if !ok {
		return repositories.ErrNotFound
	}

	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.CreatedAt = time.Now()
	r.db.deliverables = append(r.db.deliverables, *d)

	p.Status = models.ProjectCompleted
	r.db.projects[p.ID] = p

	if p.SelectedBid != nil {
		if b, ok := r.db.bids[*p.SelectedBid]; ok {
			b.BidStatus = models.BidCompleted
			r.db.bids[b.ID] = b
		}
	}
	return nil
}
