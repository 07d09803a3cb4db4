package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Providers struct {
		OpenAIKey      string   `json:"openai_api_key"`
		GroqKey        string   `json:"groq_api_key"`
		StabilityKey   string   `json:"stability_api_key"`
		HuggingFaceKey string   `json:"huggingface_api_key"`
		ElevenLabsKey  string   `json:"elevenlabs_api_key"`
		DeepgramKey    string   `json:"deepgram_api_key"`
		AuthURL        string   `json:"auth_url"`
		AuthKey        string   `json:"auth_key"`
		LLMTimeout     Duration `json:"llm_timeout"`
		VendorTimeout  Duration `json:"vendor_timeout"`
	} `json:"providers,omitempty"`

	Billing struct {
		GenerationCost   int `json:"generation_cost"`
		FreeProjectLimit int `json:"free_project_limit"`
		StarterCredits   int `json:"starter_credits"`
	} `json:"billing,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Providers: Providers{
			OpenAIKey:      jsonCfg.Providers.OpenAIKey,
			GroqKey:        jsonCfg.Providers.GroqKey,
			StabilityKey:   jsonCfg.Providers.StabilityKey,
			HuggingFaceKey: jsonCfg.Providers.HuggingFaceKey,
			ElevenLabsKey:  jsonCfg.Providers.ElevenLabsKey,
			DeepgramKey:    jsonCfg.Providers.DeepgramKey,
			AuthURL:        jsonCfg.Providers.AuthURL,
			AuthKey:        jsonCfg.Providers.AuthKey,
			LLMTimeout:     time.Duration(jsonCfg.Providers.LLMTimeout),
			VendorTimeout:  time.Duration(jsonCfg.Providers.VendorTimeout),
		},
		Billing: Billing{
			GenerationCost:   jsonCfg.Billing.GenerationCost,
			FreeProjectLimit: jsonCfg.Billing.FreeProjectLimit,
			StarterCredits:   jsonCfg.Billing.StarterCredits,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
