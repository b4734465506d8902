package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/server-garage/pkg/runner"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// reply-receiver stands in for the LINE Messaging API when running the bot locally.
// Point API_ENDPOINT at it and every reply the bot sends is logged.
func main() {
	logger := logging.GetAndSetDefaultLogger("reply-receiver")
	addr := flag.String("addr", ":4001", "listen address")
	token := flag.String("token", "", "expected channel access token; any token is accepted when empty")
	flag.Parse()

	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	group, groupCtx := errgroup.WithContext(mainCtx)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Post("/v2/bot/message/reply", replyHandler(logger, *token))

	logger.Info().Str("addr", *addr).Msg("Reply receiver listening")
	runner.RunFiber(groupCtx, group, app, *addr)
	if err := group.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Reply receiver failed.")
	}
}

func replyHandler(logger zerolog.Logger, token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token != "" && c.Get(fiber.HeaderAuthorization) != "Bearer "+token {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication failed due to the following reason: invalid token.",
			})
		}
		logger.Info().RawJSON("reply", c.Body()).Msg("Reply received")
		return c.JSON(fiber.Map{})
	}
}
