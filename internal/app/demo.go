package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userstore/internal/models"
)

// demo inserts two users, updates and deletes the first one and lists what
// remains. Emails carry a per-run tag so repeated runs against the same
// database do not collide on the unique email index.
func (app *App) demo(ctx context.Context) error {
	tag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	today := models.Today()

	first, err := models.NewUser("Test User 1", "user1+"+tag+"@example.com", today)
	if err != nil {
		return err
	}
	replacement, err := models.NewUser("Test User 2", "user2+"+tag+"@example.com", today)
	if err != nil {
		return err
	}
	third, err := models.NewUser("Test User 3", "user3+"+tag+"@example.com", today)
	if err != nil {
		return err
	}

	if err := app.userService.Insert(ctx, first); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	if err := app.userService.Insert(ctx, third); err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	if err := app.printByID(ctx, "inserted", first.ID); err != nil {
		return err
	}

	if err := app.userService.Update(ctx, first.ID, replacement); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if err := app.printByID(ctx, "updated", first.ID); err != nil {
		return err
	}

	if err := app.userService.Delete(ctx, first.ID); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if err := app.printer.event("deleted", first.ID); err != nil {
		return err
	}

	all, err := app.userService.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("find all: %w", err)
	}
	return app.printer.list(all)
}

func (app *App) printByID(ctx context.Context, event string, id int64) error {
	u, found, err := app.userService.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find by id: %w", err)
	}
	if !found {
		return fmt.Errorf("user %d not found after %s", id, event)
	}
	return app.printer.user(event, u)
}
