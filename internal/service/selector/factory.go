package selector

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cmsselect/internal/clientinfo"
	"cmsselect/internal/domain"
	"cmsselect/internal/domain/repositories"
	"cmsselect/internal/domain/services"
	"cmsselect/internal/i18n"
	"cmsselect/internal/sanitizer"
)

// ClientResolver returns the configuration of a client.
type ClientResolver interface {
	Get(clientID int) (*clientinfo.Info, error)
}

// PathOracle tests whether an absolute path exists on the upload medium.
type PathOracle interface {
	IsDir(path string) bool
	IsFile(path string) bool
}

// FactoryConfig lists the collaborators shared by all selectors.
type FactoryConfig struct {
	Categories repositories.CategoryRepository
	Articles   repositories.ArticleRepository
	Contents   repositories.ContentRepository
	Uploads    repositories.UploadRepository
	Dbfs       repositories.DbfsRepository
	Clients    ClientResolver
	Paths      PathOracle
	Translator *i18n.Translator
	Stripper   *sanitizer.Stripper
	Logger     *slog.Logger
}

// Factory builds request scoped selectors bound to a client and language.
type Factory struct {
	cfg FactoryConfig
}

var _ services.SelectorFactory = (*Factory)(nil)

// NewFactory validates that every collaborator is present.
func NewFactory(cfg FactoryConfig) (*Factory, error) {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Categories, validation.Required),
		validation.Field(&cfg.Articles, validation.Required),
		validation.Field(&cfg.Contents, validation.Required),
		validation.Field(&cfg.Uploads, validation.Required),
		validation.Field(&cfg.Dbfs, validation.Required),
		validation.Field(&cfg.Clients, validation.Required),
		validation.Field(&cfg.Paths, validation.Required),
		validation.Field(&cfg.Translator, validation.Required),
		validation.Field(&cfg.Stripper, validation.Required),
		validation.Field(&cfg.Logger, validation.Required),
	)
	if err != nil {
		return nil, &domain.ConfigurationError{Component: "selector factory", Message: "missing collaborator", Err: err}
	}
	return &Factory{cfg: cfg}, nil
}

// Categories builds a category tree selector.
func (f *Factory) Categories(clientID, languageID int) (services.CategoryTreeSelector, error) {
	return NewCategoryTreeSelector(f.cfg.Categories, f.cfg.Articles, Scope{ClientID: clientID, LanguageID: languageID}, f.cfg.Logger)
}

// Articles builds an article selector.
func (f *Factory) Articles(clientID, languageID int) (services.ArticleSelector, error) {
	return NewArticleSelector(f.cfg.Articles, Scope{ClientID: clientID, LanguageID: languageID}, f.cfg.Logger)
}

// ContentSlots builds a content slot selector.
func (f *Factory) ContentSlots(clientID, languageID int) (services.ContentSlotSelector, error) {
	return NewContentSlotSelector(f.cfg.Contents, f.cfg.Stripper, Scope{ClientID: clientID, LanguageID: languageID}, f.cfg.Logger)
}

// Files builds a file tree selector. The client must be configured.
func (f *Factory) Files(clientID, languageID int) (services.FileTreeSelector, error) {
	scope := Scope{ClientID: clientID, LanguageID: languageID}
	if err := scope.validate("file tree selector"); err != nil {
		return nil, err
	}
	info, err := f.cfg.Clients.Get(clientID)
	if err != nil {
		return nil, err
	}
	headers := f.cfg.Translator.Match(info.Locale(languageID))
	return NewFileTreeSelector(FileTreeConfig{
		Uploads: f.cfg.Uploads,
		Dbfs:    f.cfg.Dbfs,
		Client:  info,
		Paths:   f.cfg.Paths,
		Labels: FileTreeLabels{
			Upload: f.cfg.Translator.Translate(headers, i18n.MsgUploadDirectory),
			Dbfs:   f.cfg.Translator.Translate(headers, i18n.MsgDatabaseFileSystem),
		},
		Scope:  scope,
		Logger: f.cfg.Logger,
	})
}

// Scope binds a selector to one client and language.
type Scope struct {
	ClientID   int
	LanguageID int
}

func (s Scope) validate(component string) error {
	if s.ClientID <= 0 {
		return domain.NewConfigurationError(component, "invalid client id %d", s.ClientID)
	}
	if s.LanguageID <= 0 {
		return domain.NewConfigurationError(component, "invalid language id %d", s.LanguageID)
	}
	return nil
}

func requireRepo(component, name string, present bool) error {
	if !present {
		return domain.NewConfigurationError(component, "%s is required", name)
	}
	return nil
}

func wrapQuery(what string, err error) error {
	return fmt.Errorf("%s: %w", what, err)
}
