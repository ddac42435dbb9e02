package api

import (
	"github.com/aryadee/smart-bank/internal/api/middleware"
	v1 "github.com/aryadee/smart-bank/internal/api/v1"
	"github.com/aryadee/smart-bank/internal/config"
	"github.com/gofiber/fiber/v2"
)

const prefixV1 = "api/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler, cfg config.Auth) {
	app.Get("/ping", handler.Pong)

	app.Post(prefixV1+"accounts", handler.CreateAccount)
	app.Post(prefixV1+"login", handler.Login)
	app.Post(prefixV1+"recover", handler.Recover)

	protected := middleware.Protected(cfg)

	app.Get(prefixV1+"account", protected, handler.GetAccount)
	app.Put(prefixV1+"account", protected, handler.UpdateAccount)
	app.Delete(prefixV1+"account", protected, handler.DeleteAccount)
	app.Put(prefixV1+"account/pin", protected, handler.ChangePIN)
	app.Post(prefixV1+"account/deposit", protected, handler.Deposit)
	app.Post(prefixV1+"account/withdraw", protected, handler.Withdraw)
	app.Get(prefixV1+"account/transactions", protected, handler.Transactions)
	app.Get(prefixV1+"account/advice", protected, handler.Advice)

	admin := middleware.AdminOnly()

	app.Get(prefixV1+"admin/accounts", protected, admin, handler.AdminListAccounts)
	app.Get(prefixV1+"admin/transactions", protected, admin, handler.AdminListTransactions)
}
