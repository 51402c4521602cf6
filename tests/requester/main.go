package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

type orderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

const orderBody = `{
	"platform": "ebay",
	"sellerAccountId": "seller-1",
	"sku": "SKU-1",
	"items": [{"sku": "SKU-1", "quantity": 1, "price": {"amount": "10.00", "currency": "USD"}}]
}`

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "connector base url")
	token := flag.String("token", "", "bearer token")
	parallel := flag.Int("parallel", 32, "concurrent requests per key")
	rounds := flag.Int("rounds", 10, "number of idempotency keys to test")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	for round := range *rounds {
		key := fmt.Sprintf("requester-%d-%d", time.Now().UnixNano(), round)
		if rand.Intn(5) == 0 {
			key = "SIM-RATE-" + key
		}

		var (
			wg  sync.WaitGroup
			mu  sync.Mutex
			ids = make(map[string]int)
		)
		for range *parallel {
			wg.Go(func() {
				res, err := createOrder(client, *baseURL, *token, key)
				if err != nil {
					fmt.Println("Ошибка запроса:", err)
					return
				}
				mu.Lock()
				ids[res.OrderID+"/"+res.Status]++
				mu.Unlock()
			})
		}
		wg.Wait()

		verdict := "OK"
		if len(ids) != 1 {
			verdict = "DUPLICATES"
		}
		fmt.Printf("%s key=%s results=%v\n", verdict, key, ids)
	}
}

func createOrder(client *http.Client, baseURL, token, key string) (orderResponse, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/v1/orders", bytes.NewBufferString(orderBody))
	if err != nil {
		return orderResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", key)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return orderResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return orderResponse{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var res orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return orderResponse{}, err
	}
	return res, nil
}
