package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"boutique_back_end/internal/models"
)

// CatalogIndex recopie le catalogue combiné dans Elasticsearch pour la
// recherche plein texte. Le filtre de la vitrine reste local.
type CatalogIndex struct {
	client *elasticsearch.Client
	index  string

	mu sync.Mutex
	// version compte les changements annoncés, indexed est le dernier indexé
	version atomic.Uint64
	indexed uint64
}

func ConnectElastic(url, user, password, index string) (*CatalogIndex, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("création client Elasticsearch: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("connexion Elasticsearch: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("connexion Elasticsearch: %s", res.String())
	}

	log.Println("✅ Connecté à Elasticsearch")
	return &CatalogIndex{client: client, index: index}, nil
}

// CatalogChanged réindexe en arrière-plan. Seul le dernier catalogue annoncé
// est indexé : une goroutine qui passe après une version plus récente abandonne.
func (ci *CatalogIndex) CatalogChanged(catalog []models.Product) {
	version := ci.version.Add(1)
	go func() {
		ci.mu.Lock()
		defer ci.mu.Unlock()

		if version < ci.version.Load() || version <= ci.indexed {
			return
		}
		if err := ci.reindexLocked(context.Background(), catalog); err != nil {
			log.Println("❌ Erreur réindexation Elastic:", err)
			return
		}
		ci.indexed = version
	}()
}

// Reindex vide l'index puis indexe chaque produit sous sa position dans le catalogue
func (ci *CatalogIndex) Reindex(ctx context.Context, catalog []models.Product) error {
	ci.mu.Lock()
	defer ci.mu.Unlock()
	return ci.reindexLocked(ctx, catalog)
}

func (ci *CatalogIndex) reindexLocked(ctx context.Context, catalog []models.Product) error {
	refresh := true
	del := esapi.DeleteByQueryRequest{
		Index:     []string{ci.index},
		Body:      bytes.NewReader([]byte(`{"query":{"match_all":{}}}`)),
		Conflicts: "proceed",
		Refresh:   &refresh,
	}
	res, err := del.Do(ctx, ci.client)
	if err != nil {
		return fmt.Errorf("vidage de l'index: %w", err)
	}
	res.Body.Close()
	// 404 = index pas encore créé, il le sera au premier document
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("vidage de l'index: %s", res.String())
	}

	for i, p := range catalog {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		req := esapi.IndexRequest{
			Index:      ci.index,
			DocumentID: strconv.Itoa(i),
			Body:       bytes.NewReader(data),
			Refresh:    "true",
		}
		res, err := req.Do(ctx, ci.client)
		if err != nil {
			return fmt.Errorf("indexation de %q: %w", p.Name, err)
		}
		if res.IsError() {
			log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Name, res.String())
		}
		res.Body.Close()
	}

	log.Printf("✅ %d produits indexés dans Elasticsearch", len(catalog))
	return nil
}

// Search cherche par nom avec tolérance aux fautes de frappe
func (ci *CatalogIndex) Search(ctx context.Context, query string) ([]models.Product, error) {
	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"match": map[string]interface{}{
				"name": map[string]interface{}{
					"query":     query,
					"fuzziness": "AUTO",
				},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{ci.index},
		Body:  &buf,
	}
	res, err := req.Do(ctx, ci.client)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("index non trouvé ou vide")
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %w", err)
	}

	products := make([]models.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		products = append(products, hit.Source)
	}
	return products, nil
}
