package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements Store on top of Google Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// FirestoreConfig holds the settings needed to build a Firestore client.
// CredentialsJSON takes precedence over CredentialsFile; with neither set,
// application default credentials are used.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
	CredentialsJSON string
}

// NewFirestoreStore connects to Firestore.
func NewFirestoreStore(ctx context.Context, cfg FirestoreConfig) (*FirestoreStore, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("firestore: project ID is required")
	}

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

// Get performs a point read.
func (s *FirestoreStore) Get(ctx context.Context, collection, key string) (*Document, error) {
	snap, err := s.client.Collection(collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, wrapUnavailable(err)
	}
	return &Document{Key: snap.Ref.ID, Data: snap.Data()}, nil
}

// Set writes a document, optionally merging into existing fields.
func (s *FirestoreStore) Set(ctx context.Context, collection, key string, fields map[string]interface{}, merge bool) error {
	ref := s.client.Collection(collection).Doc(key)
	var err error
	if merge {
		_, err = ref.Set(ctx, fields, firestore.MergeAll)
	} else {
		_, err = ref.Set(ctx, fields)
	}
	if err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

// Update merges partial fields into an existing document. Firestore raises
// NotFound for an absent key, matching the Store contract.
func (s *FirestoreStore) Update(ctx context.Context, collection, key string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for field, value := range fields {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}
	_, err := s.client.Collection(collection).Doc(key).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return wrapUnavailable(err)
	}
	return nil
}

// Delete removes a document. Firestore treats deleting an absent key as a
// no-op, which matches the contract.
func (s *FirestoreStore) Delete(ctx context.Context, collection, key string) error {
	if _, err := s.client.Collection(collection).Doc(key).Delete(ctx); err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

// Query scans a collection with equality filters.
func (s *FirestoreStore) Query(ctx context.Context, collection string, filters []Filter, limit int) ([]*Document, error) {
	q := s.client.Collection(collection).Query
	for _, f := range filters {
		q = q.Where(f.Field, "==", f.Value)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var docs []*Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapUnavailable(err)
		}
		docs = append(docs, &Document{Key: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// RunTransaction executes fn with Firestore's optimistic transaction,
// which retries on conflict.
func (s *FirestoreStore) RunTransaction(ctx context.Context, fn func(tx Tx) error) error {
	err := s.client.RunTransaction(ctx, func(ctx context.Context, t *firestore.Transaction) error {
		return fn(&firestoreTx{client: s.client, tx: t})
	})
	if err != nil {
		return wrapUnavailable(err)
	}
	return nil
}

// Close releases the Firestore client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// firestoreTx adapts *firestore.Transaction to the Tx interface.
type firestoreTx struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (t *firestoreTx) Get(collection, key string) (map[string]interface{}, error) {
	snap, err := t.tx.Get(t.client.Collection(collection).Doc(key))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, wrapUnavailable(err)
	}
	return snap.Data(), nil
}

func (t *firestoreTx) Set(collection, key string, fields map[string]interface{}, merge bool) error {
	ref := t.client.Collection(collection).Doc(key)
	if merge {
		return t.tx.Set(ref, fields, firestore.MergeAll)
	}
	return t.tx.Set(ref, fields)
}

func wrapUnavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
