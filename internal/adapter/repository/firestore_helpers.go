package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"visionmatch/internal/domain/repository"
	"visionmatch/pkg/errors"
)

const (
	projectRequestsCollection = "ProjectRequests"
	projectMessagesCollection = "ProjectMessages"
	messagesSubcollection     = "messages"
	bookingsCollection        = "Bookings"
	reviewsCollection         = "Reviews"
	usersCollection           = "Users"
	creatorsCollection        = "creators"
)

// toUpdates turns a field map into Firestore updates in a stable order.
func toUpdates(fields repository.Fields) []firestore.Update {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make([]firestore.Update, 0, len(keys))
	for _, k := range keys {
		updates = append(updates, firestore.Update{Path: k, Value: fields[k]})
	}
	return updates
}

func updateDoc(ctx context.Context, doc *firestore.DocumentRef, resource string, fields repository.Fields) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := doc.Update(ctx, toUpdates(fields))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound(resource, err)
		}
		return errors.Internal("Failed to update "+resource, err)
	}
	return nil
}

func getDoc[T any](ctx context.Context, doc *firestore.DocumentRef, resource string) (*T, error) {
	snap, err := doc.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound(resource, err)
		}
		return nil, errors.Internal("Failed to get "+resource, err)
	}

	var out T
	if err := snap.DataTo(&out); err != nil {
		return nil, errors.Internal("Failed to parse "+resource+" data", err)
	}
	return &out, nil
}

func queryDocs[T any](ctx context.Context, query firestore.Query, resource string) ([]*T, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	items := []*T{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to query "+resource, err)
		}

		var item T
		if err := snap.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse "+resource+" data", err)
		}
		items = append(items, &item)
	}
	return items, nil
}
