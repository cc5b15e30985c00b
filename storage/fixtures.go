package storage

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"

	"github.com/goliatone/go-tenant-api/model"
	"github.com/goliatone/go-tenant-api/resource"
)

// Seed populates an empty database with a demo data set: a product catalog,
// a handful of carrier clients plus one admin, and users spread across the
// clients. It is a no-op when clients already exist.
func Seed(ctx context.Context, db *bun.DB) error {
	count, err := db.NewSelect().Model((*model.Client)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	colors := []string{"Red", "Blue", "Green", "Yellow", "Purple", "Rose"}
	prices := []string{"199$", "259$", "399$", "429$", "499$", "899$"}

	products := make([]model.Product, 0, 10)
	for i := 1; i <= 10; i++ {
		products = append(products, model.Product{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("Univers S%d", i),
			Description: fmt.Sprintf("Description of BileMo model Univers S%d", i),
			Color:       colors[rand.IntN(len(colors))],
			Price:       prices[rand.IntN(len(prices))],
		})
	}
	if _, err := db.NewInsert().Model(&products).Exec(ctx); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	clients := make([]model.Client, 0, 6)
	for _, name := range []string{"orange", "sfr", "bouygues", "free"} {
		clients = append(clients, model.Client{
			ID:           uuid.New().String(),
			Email:        "client@" + name + ".com",
			Name:         name,
			Roles:        model.RoleList{resource.RoleStandard},
			PasswordHash: string(hash),
		})
	}
	clients = append(clients, model.Client{
		ID:           uuid.New().String(),
		Email:        "exemple@bilemo.com",
		Name:         "Test client",
		Roles:        model.RoleList{resource.RoleStandard},
		PasswordHash: string(hash),
	})
	if _, err := db.NewInsert().Model(&clients).Exec(ctx); err != nil {
		return err
	}

	admin := model.Client{
		ID:           uuid.New().String(),
		Email:        "apiadmin1@bilemo.com",
		Name:         "API admin",
		Roles:        model.RoleList{resource.RoleAdmin},
		PasswordHash: string(hash),
	}
	if _, err := db.NewInsert().Model(&admin).Exec(ctx); err != nil {
		return err
	}

	users := make([]model.User, 0, 50)
	for i := 1; i <= 50; i++ {
		owner := clients[rand.IntN(len(clients))]
		users = append(users, model.User{
			ID:        uuid.New().String(),
			Name:      fmt.Sprintf("Boutique %d", i),
			Address:   fmt.Sprintf("%d rue de la Paix, Paris", i),
			Telephone: fmt.Sprintf("+33 1 00 00 %02d %02d", i/10, i%100),
			ClientID:  owner.ID,
		})
	}
	if _, err := db.NewInsert().Model(&users).Exec(ctx); err != nil {
		return err
	}

	return nil
}
