package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/x-xyz/bnsapi/base/metrics"
)

// ThrottledClient bounds the number of contract reads in flight against one rpc
type ThrottledClient struct {
	*ethclient.Client
	tokens chan struct{}
	met    metrics.Service
}

func NewThrottledClient(client *ethclient.Client, n int) *ThrottledClient {
	if n <= 0 {
		n = 1
	}
	return &ThrottledClient{
		Client: client,
		tokens: make(chan struct{}, n),
		met:    metrics.New("ethclient"),
	}
}

func (c *ThrottledClient) CodeAt(ctx context.Context, address common.Address, number *big.Int) ([]byte, error) {
	if err := c.before(ctx, "CodeAt"); err != nil {
		return nil, err
	}
	defer c.after()
	return c.Client.CodeAt(ctx, address, number)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	if err := c.before(ctx, "CallContract"); err != nil {
		return nil, err
	}
	defer c.after()
	return c.Client.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) before(ctx context.Context, method string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	now := time.Now()
	select {
	case <-ctx.Done():
		c.met.BumpSum("throttle.err", 1, "method", method)
		return ctx.Err()
	case c.tokens <- struct{}{}:
		c.met.BumpHistogram("throttle.wait", float64(time.Since(now))/float64(time.Millisecond), "method", method)
		return nil
	}
}

func (c *ThrottledClient) after() {
	<-c.tokens
}
