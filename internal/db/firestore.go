package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/ukydev/trackpit/internal/models"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements Backend on Cloud Firestore using the native
// users/{uid}/... hierarchy.
type FirestoreStore struct {
	client *firestore.Client
}

// ConnectFirestore creates a Firestore client. credentialsFile may be empty,
// in which case application default credentials (or FIRESTORE_EMULATOR_HOST)
// are used.
func ConnectFirestore(ctx context.Context, projectID, credentialsFile string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient error: %w", err)
	}
	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) user(uid string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(uid)
}

func (s *FirestoreStore) service(uid, serviceID string) *firestore.DocumentRef {
	return s.user(uid).Collection(servicesCollection).Doc(serviceID)
}

// decodeAll drains iter, decoding each document and recording its id.
// Documents that do not fit T are skipped.
func decodeAll[T any](iter *firestore.DocumentIterator, setID func(*T, string)) ([]T, error) {
	defer iter.Stop()
	var out []T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var v T
		err = doc.DataTo(&v)
		setID(&v, doc.Ref.ID)
		out = keepDecoded(out, v, doc.Ref.Path, err)
	}
	return out, nil
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// ListUsers returns every user.
func (s *FirestoreStore) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := decodeAll(s.client.Collection(usersCollection).Documents(ctx), func(u *models.User, id string) {
		u.ID = id
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ListServices returns the services of a user.
func (s *FirestoreStore) ListServices(ctx context.Context, uid string) ([]models.Service, error) {
	services, err := decodeAll(s.user(uid).Collection(servicesCollection).Documents(ctx), func(svc *models.Service, id string) {
		svc.ID = id
		svc.UserID = uid
	})
	if err != nil {
		return nil, fmt.Errorf("list services of %s: %w", uid, err)
	}
	return services, nil
}

// FindService reads one service document.
func (s *FirestoreStore) FindService(ctx context.Context, uid, serviceID string) (*models.Service, error) {
	doc, err := s.service(uid, serviceID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service %s: %w", serviceID, err)
	}
	var svc models.Service
	if err := doc.DataTo(&svc); err != nil {
		return nil, undecodable(doc.Ref.Path, err)
	}
	svc.ID = doc.Ref.ID
	svc.UserID = uid
	return &svc, nil
}

// ListTimeline returns the status timeline of a service.
func (s *FirestoreStore) ListTimeline(ctx context.Context, uid, serviceID string) ([]models.StatusTimelineEntry, error) {
	iter := s.service(uid, serviceID).Collection(timelineCollection).Documents(ctx)
	entries, err := decodeAll(iter, func(e *models.StatusTimelineEntry, id string) {
		e.ID = id
		e.UserID = uid
		e.ServiceID = serviceID
	})
	if err != nil {
		return nil, fmt.Errorf("list timeline of %s: %w", serviceID, err)
	}
	return entries, nil
}

// FindVehicle reads one vehicle document.
func (s *FirestoreStore) FindVehicle(ctx context.Context, uid, vehicleID string) (*models.Vehicle, error) {
	doc, err := s.user(uid).Collection(vehiclesCollection).Doc(vehicleID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vehicle %s: %w", vehicleID, err)
	}
	var v models.Vehicle
	if err := doc.DataTo(&v); err != nil {
		return nil, undecodable(doc.Ref.Path, err)
	}
	v.ID = doc.Ref.ID
	v.UserID = uid
	return &v, nil
}

// FindInvoicesByService queries the invoices a user holds for a service.
func (s *FirestoreStore) FindInvoicesByService(ctx context.Context, uid, serviceID string, limit int) ([]models.Invoice, error) {
	q := s.user(uid).Collection(invoicesCollection).Where("serviceId", "==", serviceID)
	if limit > 0 {
		q = q.Limit(limit)
	}
	invoices, err := decodeAll(q.Documents(ctx), func(inv *models.Invoice, id string) {
		inv.ID = id
		inv.UserID = uid
	})
	if err != nil {
		return nil, fmt.Errorf("find invoices of %s: %w", serviceID, err)
	}
	return invoices, nil
}

// FindFeedbackByService queries the global feedback collection.
func (s *FirestoreStore) FindFeedbackByService(ctx context.Context, serviceID string) ([]models.Feedback, error) {
	q := s.client.Collection(feedbackCollection).Where("serviceId", "==", serviceID)
	feedback, err := decodeAll(q.Documents(ctx), func(f *models.Feedback, id string) {
		f.ID = id
	})
	if err != nil {
		return nil, fmt.Errorf("find feedback of %s: %w", serviceID, err)
	}
	return feedback, nil
}

// UpdateTimelineCompletedAt sets completedAt of one timeline entry. Firestore
// rejects updates of missing documents, which surfaces as ErrNotFound.
func (s *FirestoreStore) UpdateTimelineCompletedAt(ctx context.Context, uid, serviceID, statusID string, completedAt *time.Time) error {
	ref := s.service(uid, serviceID).Collection(timelineCollection).Doc(statusID)
	_, err := ref.Update(ctx, []firestore.Update{{Path: "completedAt", Value: completedAtValue(completedAt)}})
	if err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update timeline %s: %w", statusID, err)
	}
	return nil
}

// CreateInvoice checks for an existing invoice and writes the new one in a
// single transaction.
func (s *FirestoreStore) CreateInvoice(ctx context.Context, uid string, inv models.NewInvoice) (string, error) {
	invoices := s.user(uid).Collection(invoicesCollection)
	ref := invoices.NewDoc()
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := tx.Documents(invoices.Where("serviceId", "==", inv.ServiceID).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return ErrInvoiceExists
		}
		return tx.Create(ref, inv)
	})
	if err != nil {
		if errors.Is(err, ErrInvoiceExists) {
			return "", ErrInvoiceExists
		}
		return "", fmt.Errorf("create invoice: %w", err)
	}
	return ref.ID, nil
}

// SeedUser writes a user with its vehicles, services, timeline and feedback.
func (s *FirestoreStore) SeedUser(ctx context.Context, seed models.SeedUser) error {
	uid := seed.User.ID
	if _, err := s.user(uid).Set(ctx, seed.User); err != nil {
		return fmt.Errorf("seed user %s: %w", uid, err)
	}
	for _, v := range seed.Vehicles {
		if _, err := s.user(uid).Collection(vehiclesCollection).Doc(v.ID).Set(ctx, v); err != nil {
			return fmt.Errorf("seed vehicle %s: %w", v.ID, err)
		}
	}
	for _, svc := range seed.Services {
		ref := s.service(uid, svc.Service.ID)
		if _, err := ref.Set(ctx, svc.Service); err != nil {
			return fmt.Errorf("seed service %s: %w", svc.Service.ID, err)
		}
		for _, entry := range svc.Timeline {
			if _, err := ref.Collection(timelineCollection).Doc(entry.ID).Set(ctx, entry); err != nil {
				return fmt.Errorf("seed timeline %s: %w", entry.ID, err)
			}
		}
	}
	for _, f := range seed.Feedback {
		if _, err := s.client.Collection(feedbackCollection).Doc(f.ID).Set(ctx, f); err != nil {
			return fmt.Errorf("seed feedback %s: %w", f.ID, err)
		}
	}
	return nil
}

// Close releases the client.
func (s *FirestoreStore) Close(_ context.Context) error {
	return s.client.Close()
}
