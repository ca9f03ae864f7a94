package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/handiism/recipe-browser/internal/app"
	"github.com/handiism/recipe-browser/internal/controller"
	"github.com/handiism/recipe-browser/internal/logging"
	"github.com/handiism/recipe-browser/internal/model"
)

func main() {
	// Command line flags
	var (
		searchFlag     = flag.String("search", "", "Search recipes by name (empty string lists a default set)")
		categoriesFlag = flag.Bool("categories", false, "List recipe categories")
		categoryFlag   = flag.String("category", "", "List recipes in a category")
		lookupFlag     = flag.String("lookup", "", "Show a recipe by id")
		favoritesFlag  = flag.Bool("favorites", false, "List favorite recipes")
		toggleFlag     = flag.String("toggle", "", "Add or remove a recipe from favorites by id")
		configFlag     = flag.String("config", "", "Path to config file")
		verboseFlag    = flag.Bool("verbose", false, "Write debug logs to stderr")
	)

	flag.Parse()

	searchSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "search" {
			searchSet = true
		}
	})

	if !searchSet && !*categoriesFlag && *categoryFlag == "" && *lookupFlag == "" && !*favoritesFlag && *toggleFlag == "" {
		fmt.Println("Recipe Browser - Browse TheMealDB from the command line")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  recipes -search <name> | -categories | -category <name>")
		fmt.Println("  recipes -lookup <id> | -favorites | -toggle <id>")
		fmt.Println()
		fmt.Println("For interactive mode, use: recipes-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	settings, err := app.LoadSettings(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}
	// The CLI owns no screen, so its log goes to stderr or nowhere.
	settings.LogFile = ""

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, "recipes", settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *verboseFlag {
		logging.SetOutput(os.Stderr, slog.LevelDebug, settings.Trace)
	}

	switch {
	case searchSet:
		err = search(ctx, a, *searchFlag)
	case *categoriesFlag:
		err = categories(ctx, a)
	case *categoryFlag != "":
		err = category(ctx, a, *categoryFlag)
	case *lookupFlag != "":
		err = lookup(ctx, a, *lookupFlag)
	case *favoritesFlag:
		err = listFavorites(ctx, a)
	case *toggleFlag != "":
		err = toggle(ctx, a, *toggleFlag)
	}

	if err := a.Close(err); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nInterrupted.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func search(ctx context.Context, a *app.App, query string) error {
	recipes, err := a.Catalog.SearchByName(ctx, query)
	if err != nil {
		return err
	}
	printRecipes(recipes)
	return nil
}

func categories(ctx context.Context, a *app.App) error {
	cats, err := a.Catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range model.WithAllCategory(cats) {
		fmt.Println(c.Name)
	}
	return nil
}

func category(ctx context.Context, a *app.App, name string) error {
	if strings.EqualFold(name, model.AllCategoryName) {
		return search(ctx, a, "")
	}
	recipes, err := a.Catalog.FilterByCategory(ctx, name)
	if err != nil {
		return err
	}
	printRecipes(recipes)
	return nil
}

func lookup(ctx context.Context, a *app.App, id string) error {
	recipe, err := a.Catalog.LookupByID(ctx, id)
	if err != nil {
		return err
	}
	if recipe == nil {
		return fmt.Errorf("recipe %s not found", id)
	}
	favorite, err := a.Favorites.IsFavorite(ctx, id)
	if err != nil {
		logging.Logger().Warn("favorites unavailable", "error", err.Error())
	}

	heart := ""
	if favorite {
		heart = " ♥"
	}
	fmt.Printf("%s%s\n", recipe.Name, heart)
	fmt.Printf("Category: %s", recipe.CategoryLabel())
	if recipe.Area != "" {
		fmt.Printf(" | Area: %s", recipe.Area)
	}
	fmt.Println()
	fmt.Println()
	fmt.Println("Ingredients:")
	for _, ing := range recipe.Ingredients {
		fmt.Printf("- %s\n", ing)
	}
	fmt.Println()
	fmt.Println("Instructions:")
	fmt.Println(strings.TrimSpace(recipe.Instructions))
	return nil
}

func listFavorites(ctx context.Context, a *app.App) error {
	list, err := a.Favorites.ReadAll(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No favorites yet.")
		return nil
	}
	printRecipes(list)
	return nil
}

func toggle(ctx context.Context, a *app.App, id string) error {
	// Detail swallows fetch errors; look the id up first so an unreachable
	// catalog is not reported as an unknown recipe.
	recipe, err := a.Catalog.LookupByID(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog unavailable: %w", err)
	}
	if recipe == nil {
		return fmt.Errorf("recipe %s not found", id)
	}

	detail := controller.NewDetail(id, a.Catalog, a.Favorites)
	detail.Mount(ctx)
	defer detail.Unmount()

	n, err := detail.ToggleFavorite(ctx)
	if errors.Is(err, controller.ErrNoRecipe) {
		return fmt.Errorf("recipe %s could not be loaded", id)
	}
	fmt.Printf("%s: %s\n", n.Title, n.Message)
	return err
}

func printRecipes(recipes []model.Recipe) {
	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return
	}
	for _, r := range recipes {
		fmt.Printf("%-8s %s [%s]\n", r.ID, r.Name, r.CategoryLabel())
	}
}
