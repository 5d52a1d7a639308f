package condcache_test

import (
	"context"
	"log"
	"net/http"

	condcache "github.com/GovThePPL/candid-sub001"
	"github.com/GovThePPL/candid-sub001/durable/memkv"
)

func Example() {
	cc, err := condcache.New(condcache.Options{Durable: memkv.New()})
	if err != nil {
		log.Fatal(err)
	}
	defer cc.Close(context.Background())

	fetch := func(ctx context.Context, cond condcache.Conditional) (condcache.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.example.com/stats/nyc/housing", nil)
		if err != nil {
			return nil, err
		}
		cond.Apply(req.Header)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		return condcache.WrapHTTP(resp), nil
	}

	res, err := cc.FetchWithCache(context.Background(),
		condcache.KeyStats("nyc", "housing"), fetch,
		condcache.FetchOptions{MaxAge: condcache.MaxAgeStats})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("fromCache=%v bytes=%d", res.FromCache, len(res.Data))
}
