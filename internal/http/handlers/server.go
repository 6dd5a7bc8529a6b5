package handlers

import (
	"go.uber.org/zap"

	"github.com/binaamart/storefront/internal/cart"
	"github.com/binaamart/storefront/internal/catalog"
	"github.com/binaamart/storefront/internal/contact"
)

var (
	catalogRepo catalog.Repository
	cartHub     *cart.Hub
	contactRepo contact.Repository
	mailer      contact.Mailer

	logger = zap.NewNop()
)

func SetCatalogRepo(r catalog.Repository) {
	catalogRepo = r
}

func SetCartHub(h *cart.Hub) {
	cartHub = h
}

func SetContactRepo(r contact.Repository) {
	contactRepo = r
}

func SetMailer(m contact.Mailer) {
	mailer = m
}

func SetLogger(l *zap.Logger) {
	logger = l
}
