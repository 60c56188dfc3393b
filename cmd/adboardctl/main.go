// Command adboardctl is a small terminal client for the adboard backend.
// It wires the SDK the way an embedding application would: one session
// store, one shared transport, the endpoint services, and the repositories
// whose tri-state sequences drive the output.
//
// Usage:
//
//	adboardctl login -identifier a@b.com -password secret
//	adboardctl register -username anna -email a@b.com -password secret
//	adboardctl whoami
//	adboardctl adverts
//	adboardctl upload -file ./cat.png
//	adboardctl logout
package main

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mkarimli/go-adboard-client/internal/config"
	"github.com/mkarimli/go-adboard-client/internal/domain"
	"github.com/mkarimli/go-adboard-client/internal/observability"
	"github.com/mkarimli/go-adboard-client/internal/repo"
	"github.com/mkarimli/go-adboard-client/internal/resource"
	"github.com/mkarimli/go-adboard-client/internal/services"
	"github.com/mkarimli/go-adboard-client/internal/session"
	"github.com/mkarimli/go-adboard-client/internal/sysutil"
	"github.com/mkarimli/go-adboard-client/internal/transport"
)

const version = "0.3.0"

type app struct {
	log      zerolog.Logger
	sessions *session.Store
	auth     repo.Authenticator
	adverts  repo.AdvertProvider
	users    repo.ProfileManager
	uploads  repo.FileUploader
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func realMain() error {
	cfg := config.MustLoad()
	sysutil.SetLogLevel(cfg.LogLevel)
	log := sysutil.NewLogger(cfg.LogPretty)

	ctx := context.Background()

	shutdown, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return fmt.Errorf("observability setup: %w", err)
	}
	defer func() { _ = shutdown(ctx) }()

	var kv session.KeyValue
	if cfg.SessionDBPath != "" {
		db, err := session.OpenSQLite(cfg.SessionDBPath)
		if err != nil {
			return fmt.Errorf("open session db: %w", err)
		}
		defer db.Close()
		kv = db
	} else {
		kv = session.NewMemoryKV()
	}
	sessions := session.NewStore(kv)

	tp := transport.New(transport.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.HTTPTimeout,
		Logger:  log,
	}, sessions)

	a := &app{
		log:      log,
		sessions: sessions,
		auth:     repo.NewAuthRepository(services.NewAuthService(tp), cfg.EmitDelay),
		adverts:  repo.NewAdvertRepository(services.NewAdvertService(tp), cfg.EmitDelay),
		users:    repo.NewUserRepository(services.NewUserService(tp), cfg.EmitDelay),
		uploads:  repo.NewUploadRepository(services.NewUploadService(tp), cfg.EmitDelay),
	}

	if len(os.Args) < 2 {
		return fmt.Errorf("missing subcommand (login, register, whoami, adverts, upload, logout)")
	}

	switch os.Args[1] {
	case "login":
		return a.login(ctx, os.Args[2:])
	case "register":
		return a.register(ctx, os.Args[2:])
	case "whoami":
		return a.whoami(ctx)
	case "adverts":
		return a.listAdverts(ctx)
	case "upload":
		return a.upload(ctx, os.Args[2:])
	case "logout":
		return a.logout()
	default:
		return fmt.Errorf("unknown subcommand %q", os.Args[1])
	}
}

// await drains one tri-state sequence: ignores the Loading value and returns
// the terminal one.
func await[T any](ch <-chan resource.Result[T]) (T, error) {
	var last resource.Result[T]
	for r := range ch {
		last = r
	}
	if last.IsError() {
		var zero T
		return zero, fmt.Errorf("%s", last.Message)
	}
	return last.Value, nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	identifier := fs.String("identifier", "", "email or username")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	resp, err := await(a.auth.Login(ctx, domain.LoginRequest{Identifier: *identifier, Password: *password}))
	if err != nil {
		return err
	}
	if err := a.storeSession(resp); err != nil {
		return err
	}
	if resp.User != nil {
		a.log.Debug().Int("user_id", resp.User.ID).Msg("session stored")
	}
	fmt.Println("logged in")
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "desired username")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	resp, err := await(a.auth.Register(ctx, domain.RegisterRequest{
		Username: *username, Email: *email, Password: *password,
	}))
	if err != nil {
		return err
	}
	if err := a.storeSession(resp); err != nil {
		return err
	}
	fmt.Println("account created")
	return nil
}

func (a *app) storeSession(resp *domain.AuthResponse) error {
	var userID *int
	var email, username *string
	if resp.User != nil {
		userID, email, username = &resp.User.ID, &resp.User.Email, &resp.User.Username
	}
	return a.sessions.SetSession(resp.JWT, userID, email, username)
}

func (a *app) whoami(ctx context.Context) error {
	if !a.sessions.IsLoggedIn() {
		return fmt.Errorf("not logged in")
	}
	u, err := await(a.users.Me(ctx))
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> (id %d)\n", u.Username, u.Email, u.ID)
	return nil
}

func (a *app) listAdverts(ctx context.Context) error {
	adverts, err := await(a.adverts.List(ctx))
	if err != nil {
		return err
	}
	if len(adverts) == 0 {
		fmt.Println("no adverts")
		return nil
	}
	for _, ad := range adverts {
		price := "-"
		if ad.Price != nil {
			price = fmt.Sprintf("%.2f", *ad.Price)
		}
		fmt.Printf("%5d  %-40s %s\n", ad.ID, ad.Title, price)
	}
	return nil
}

func (a *app) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	file := fs.String("file", "", "path of the file to upload")
	_ = fs.Parse(args)

	data, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	name := filepath.Base(*file)
	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}

	files, err := await(a.uploads.Upload(ctx, name, ct, data))
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Printf("uploaded %s -> %s\n", f.Name, f.URL)
	}
	return nil
}

func (a *app) logout() error {
	if err := a.sessions.ClearSession(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}
