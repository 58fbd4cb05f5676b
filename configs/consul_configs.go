package configs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

type ConsulService struct {
	ID      string            `json:"ID"`
	Name    string            `json:"Name"`
	Address string            `json:"Address"`
	Port    int               `json:"Port"`
	Check   map[string]string `json:"Check"`
}

// RegisterService registers the web client with Consul. Skipped entirely
// when no Consul address is configured.
func RegisterService(cfg *Config) error {
	if cfg.Consul.Address == "" {
		return nil
	}

	name := cfg.Consul.ServiceName
	if name == "" {
		name = "plantonize-web"
	}
	address := cfg.Consul.ServiceAddress
	if address == "" {
		address = "localhost"
	}
	port := cfg.Consul.ServicePort
	if port == 0 {
		port = 4000
	}

	service := ConsulService{
		ID:      name,
		Name:    name,
		Address: address,
		Port:    port,
		Check: map[string]string{
			"HTTP":     fmt.Sprintf("http://%s:%d/health", address, port),
			"Interval": "10s",
		},
	}

	data, err := json.Marshal(service)
	if err != nil {
		return fmt.Errorf("failed to marshal service data: %v", err)
	}

	url := fmt.Sprintf("%s/v1/agent/service/register", cfg.Consul.Address)
	req, err := http.NewRequest("PUT", url, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to create PUT request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to register service with Consul: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to register service with Consul: %s", resp.Status)
	}

	log.Printf("Service '%s' registered successfully with Consul", name)
	return nil
}
