// Command trello-board is a small smoke-test binary: it loads credentials
// from the environment (or a .env file), fetches a board and prints its
// lists and cards.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/egobogo/trello"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <board-id>", os.Args[0])
	}
	boardID := os.Args[1]

	cfg, err := trello.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	client := trello.NewClient(cfg)

	ctx := context.Background()
	board, err := client.GetBoard(ctx, boardID, trello.Defaults())
	if err != nil {
		log.Fatalf("Failed to get board: %v", err)
	}
	fmt.Printf("%s (%s)\n", board.Name(), board.ShortURL())

	lists, err := board.Lists(ctx)
	if err != nil {
		log.Fatalf("Failed to get lists: %v", err)
	}
	for _, list := range lists {
		fmt.Printf("  %s\n", list.Name())
		cards, err := list.Cards(ctx)
		if err != nil {
			log.Fatalf("Failed to get cards of %s: %v", list.Name(), err)
		}
		for _, card := range cards {
			fmt.Printf("    - %s\n", card.Name())
		}
	}
}
