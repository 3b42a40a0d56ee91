package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"crousmenu/internal/crous"
	"crousmenu/internal/httpclient"
	"crousmenu/internal/render"
	"crousmenu/internal/utils/input"
	"crousmenu/internal/utils/printer"
)

type Command int

const (
	CommandInvalid Command = iota
	CommandDefaultMenu
	CommandMenuByCode
	CommandSearch
	CommandRegionRestaurants
	CommandRegions
	CommandExit
)

func (c Command) String() string {
	switch c {
	case CommandDefaultMenu:
		return "default-menu"
	case CommandMenuByCode:
		return "menu-by-code"
	case CommandSearch:
		return "search"
	case CommandRegionRestaurants:
		return "region-restaurants"
	case CommandRegions:
		return "regions"
	case CommandExit:
		return "exit"
	}
	return "invalid"
}

func ParseCommand(s string) Command {
	switch s {
	case "1":
		return CommandDefaultMenu
	case "2":
		return CommandMenuByCode
	case "3":
		return CommandSearch
	case "4":
		return CommandRegionRestaurants
	case "5":
		return CommandRegions
	case "0":
		return CommandExit
	}
	return CommandInvalid
}

// Service is what the shell queries; *crous.Service implements it.
type Service interface {
	ListRegions(ctx context.Context) ([]crous.Region, error)
	ListRestaurants(ctx context.Context, regionCode int) ([]crous.Restaurant, error)
	SearchRestaurants(ctx context.Context, name string) ([]crous.Restaurant, error)
	GetRestaurant(ctx context.Context, code int) (*crous.Restaurant, error)
	GetMenu(ctx context.Context, code int) ([]crous.Menu, error)
	GetMenuForDate(ctx context.Context, code int, date string) (*crous.Menu, error)
}

// Shell is the interactive main menu. It runs one prompt, at most one
// request and one render per step.
type Shell struct {
	svc         Service
	in          *input.Reader
	out         io.Writer
	p           *printer.Printer
	defaultCode int
}

func New(svc Service, in io.Reader, out io.Writer, defaultCode int) *Shell {
	return &Shell{
		svc:         svc,
		in:          input.NewReader(in, out),
		out:         out,
		p:           printer.New(out),
		defaultCode: defaultCode,
	}
}

// Run shows the main menu and handles choices until the user quits or the
// input ends.
func (s *Shell) Run(ctx context.Context) error {
	s.ShowMainMenu()
	for {
		exit, err := s.Step(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
		s.p.Muted("─────────────────────────────────────")
		s.p.Muted("1=Menu  2=Code  3=Chercher  4=Région  5=Régions  0=Quitter")
	}
}

func (s *Shell) ShowMainMenu() {
	fmt.Fprintln(s.out)
	render.Box(s.out, render.Double, "CROUS MENU SCANNER")
	fmt.Fprintln(s.out)
	s.p.MenuOption("1", "Menu du jour (GreEn-ER par défaut)")
	s.p.MenuOption("2", "Menu d'un restaurant (par code)")
	s.p.MenuOption("3", "Chercher un restaurant par nom")
	s.p.MenuOption("4", "Lister les restaurants d'une région")
	s.p.MenuOption("5", "Lister les régions")
	s.p.MenuOption("0", "Quitter")
	fmt.Fprintln(s.out)
}

// Step reads one choice and handles it. exit is true once the user picked 0.
// Only input errors are returned; failed queries are reported and swallowed.
func (s *Shell) Step(ctx context.Context) (exit bool, err error) {
	line, err := s.in.ReadLine(">")
	if err != nil {
		return false, err
	}
	cmd := ParseCommand(line)
	log.WithField("command", cmd).Debug("[menu] Dispatching choice")

	switch cmd {
	case CommandDefaultMenu:
		return false, s.handleDefaultMenu(ctx)
	case CommandMenuByCode:
		return false, s.handleMenuByCode(ctx)
	case CommandSearch:
		return false, s.handleSearch(ctx)
	case CommandRegionRestaurants:
		return false, s.handleRegionRestaurants(ctx)
	case CommandRegions:
		s.handleRegions(ctx)
		return false, nil
	case CommandExit:
		fmt.Fprintln(s.out)
		s.p.Success("Au revoir !")
		return true, nil
	}
	s.p.Error("Choix invalide. (1-5 ou 0)")
	return false, nil
}

func (s *Shell) handleDefaultMenu(ctx context.Context) error {
	line, err := s.in.ReadLine(fmt.Sprintf("Code du restaurant [%d] >", s.defaultCode))
	if err != nil {
		return err
	}
	code := s.defaultCode
	if line != "" {
		var ok bool
		if code, ok = input.ParseCode(line); !ok {
			s.p.Error("Code invalide.")
			return nil
		}
	}
	s.showMenu(ctx, code)
	return nil
}

func (s *Shell) handleMenuByCode(ctx context.Context) error {
	line, err := s.in.ReadLine("Code du restaurant >")
	if err != nil {
		return err
	}
	code, ok := input.ParseCode(line)
	if !ok {
		s.p.Error("Le code doit être un nombre.")
		return nil
	}
	date, err := s.in.ReadLine("Date (JJ-MM-AAAA, vide pour les prochains jours) >")
	if err != nil {
		return err
	}
	switch {
	case date == "":
		s.showMenu(ctx, code)
	case crous.ValidDate(date):
		s.showMenuForDate(ctx, code, date)
	default:
		s.p.Error("Date invalide (format JJ-MM-AAAA).")
	}
	return nil
}

func (s *Shell) handleSearch(ctx context.Context) error {
	name, err := s.in.ReadLine("Rechercher >")
	if err != nil {
		return err
	}
	if name == "" {
		s.p.Error("Recherche vide.")
		return nil
	}
	results, err := s.svc.SearchRestaurants(ctx, name)
	if len(results) == 0 {
		s.report(err)
		s.p.Info("Aucun résultat.")
		return nil
	}
	render.SearchResults(s.out, results)

	line, err := s.in.ReadLine("Voir le menu ? (entrer le code ou 'n') >")
	if err != nil {
		return err
	}
	if code, ok := input.ParseCode(line); ok {
		s.showMenu(ctx, code)
	}
	return nil
}

func (s *Shell) handleRegionRestaurants(ctx context.Context) error {
	line, err := s.in.ReadLine("Code de la région (5 pour les voir) >")
	if err != nil {
		return err
	}
	code, ok := input.ParseCode(line)
	if !ok {
		s.p.Error("Le code doit être un nombre.")
		return nil
	}
	restaurants, err := s.svc.ListRestaurants(ctx, code)
	if len(restaurants) == 0 {
		s.report(err)
		s.p.Info("Aucun restaurant trouvé pour cette région.")
		return nil
	}
	render.Restaurants(s.out, restaurants)
	return nil
}

func (s *Shell) handleRegions(ctx context.Context) {
	regions, err := s.svc.ListRegions(ctx)
	if len(regions) == 0 {
		s.report(err)
		s.p.Info("Aucune région disponible.")
		return
	}
	render.Regions(s.out, regions)
}

func (s *Shell) restaurant(ctx context.Context, code int) *crous.Restaurant {
	info, err := s.svc.GetRestaurant(ctx, code)
	if info == nil {
		s.report(err)
		s.p.Error("Restaurant introuvable.")
		return nil
	}
	return info
}

func (s *Shell) showMenu(ctx context.Context, code int) {
	info := s.restaurant(ctx, code)
	if info == nil {
		return
	}
	menus, err := s.svc.GetMenu(ctx, code)
	if len(menus) == 0 {
		s.report(err)
		s.p.Info(fmt.Sprintf("Aucun menu disponible pour '%s'.", info.Name))
		return
	}
	render.Menus(s.out, *info, menus)
}

func (s *Shell) showMenuForDate(ctx context.Context, code int, date string) {
	info := s.restaurant(ctx, code)
	if info == nil {
		return
	}
	m, err := s.svc.GetMenuForDate(ctx, code, date)
	if m == nil {
		s.report(err)
		s.p.Info(fmt.Sprintf("Aucun menu trouvé pour le %s.", date))
		return
	}
	render.MenuForDate(s.out, *info, date, *m)
}

// report prints why a query failed. Not-found is left to the caller.
func (s *Shell) report(err error) {
	if err == nil {
		return
	}
	log.WithError(err).Debug("[menu] Query failed")
	if msg := httpclient.Describe(err); msg != "" {
		s.p.Error(msg)
	}
}
