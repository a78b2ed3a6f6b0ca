// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package seller

import "context"

// Repository abstracts persistent storage of sellers.
//
// Every read returns sellers with their books eagerly loaded; there is no
// lazy loading anywhere in the system.
type Repository interface {
	ListSellers(ctx context.Context) ([]*Seller, error)
	GetSeller(ctx context.Context, id int64) (*Seller, error)
	CreateSeller(ctx context.Context, s *Seller) error
	UpdateSeller(ctx context.Context, s *Seller) error
	// DeleteSeller removes the seller; owned books go with it via the
	// ON DELETE CASCADE constraint.
	DeleteSeller(ctx context.Context, id int64) error
}
