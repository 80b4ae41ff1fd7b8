package wallet

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StartChainWatcher polls the node chain id every interval seconds and feeds
// it to the session until ctx is done.
func (s *Session) StartChainWatcher(ctx context.Context, interval int) error {
	c := cron.New()
	log.Info().Msg("Initiated Chain Watcher Cron")

	if interval <= 0 {
		interval = 15
	}

	_, err := c.AddFunc(fmt.Sprintf("@every %ds", interval), func() {
		s.checkChain(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()

	go func() {
		<-ctx.Done()
		log.Info().Msg("Stopping Chain Watcher Cron")
		c.Stop()
	}()

	return nil
}

func (s *Session) checkChain(ctx context.Context) {
	chainID, err := s.chain.ChainID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("chain watcher failed to read chain id")
		return
	}
	s.UpdateChainID(chainID)
}
