package handler

import (
	"time"

	"github.com/folioapi/internal/asset"
	"github.com/folioapi/internal/mailer"
	"github.com/folioapi/internal/service"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db             *gorm.DB
	cache          *cache.Cache
	auth           *service.AuthService
	about          *service.AboutService
	skills         *service.SkillService
	experiences    *service.ExperienceService
	projects       *service.ProjectService
	certifications *service.CertificationService
	contacts       *service.ContactService
	startedAt      time.Time
}

// Options carries the non-service wiring NewAPI needs.
type Options struct {
	JWTSecret     string
	OperatorEmail string
	SenderName    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, store asset.Store, mail mailer.Mailer, opts Options) *API {
	return &API{
		db:             gdb,
		cache:          cache.New(5*time.Minute, 10*time.Minute),
		auth:           service.NewAuthService(gdb, []byte(opts.JWTSecret)),
		about:          service.NewAboutService(gdb, store),
		skills:         service.NewSkillService(gdb, store),
		experiences:    service.NewExperienceService(gdb, store),
		projects:       service.NewProjectService(gdb, store),
		certifications: service.NewCertificationService(gdb, store),
		contacts:       service.NewContactService(gdb, mail, opts.OperatorEmail, opts.SenderName),
		startedAt:      time.Now(),
	}
}

// cached answers public reads through the in-process cache, filling it
// on a miss. Mutations drop the matching key via invalidate.
func (a *API) cached(key string, fetch func() (interface{}, error)) (interface{}, error) {
	if data, found := a.cache.Get(key); found {
		return data, nil
	}

	data, err := fetch()
	if err != nil {
		return nil, err
	}

	a.cache.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

func (a *API) invalidate(keys ...string) {
	for _, key := range keys {
		a.cache.Delete(key)
	}
}
