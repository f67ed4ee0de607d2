package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

const dateLayout = "2006-01-02"

// dateScalar carries calendar dates as YYYY-MM-DD strings on the wire and
// time.Time values internally.
var dateScalar = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "Calendar date encoded as YYYY-MM-DD.",
	Serialize: func(value any) any {
		switch v := value.(type) {
		case time.Time:
			return v.Format(dateLayout)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.Format(dateLayout)
		case string:
			return v
		default:
			return nil
		}
	},
	ParseValue: func(value any) any {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil
		}
		return t
	},
	ParseLiteral: func(valueAST ast.Value) any {
		sv, ok := valueAST.(*ast.StringValue)
		if !ok {
			return nil
		}
		t, err := time.Parse(dateLayout, sv.Value)
		if err != nil {
			return nil
		}
		return t
	},
})

var roomType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Room",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"roomNumber":    &graphql.Field{Type: graphql.String},
		"roomType":      &graphql.Field{Type: graphql.String},
		"pricePerNight": &graphql.Field{Type: graphql.Float},
		"status":        &graphql.Field{Type: graphql.String},
	},
})

var guestType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Guest",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"fullName": &graphql.Field{Type: graphql.String},
		"email":    &graphql.Field{Type: graphql.String},
		"phone":    &graphql.Field{Type: graphql.String},
		"address":  &graphql.Field{Type: graphql.String},
	},
})

var reservationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Reservation",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"guestId":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"roomId":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"checkInDate":  &graphql.Field{Type: graphql.NewNonNull(dateScalar)},
		"checkOutDate": &graphql.Field{Type: graphql.NewNonNull(dateScalar)},
		"status":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"room":         &graphql.Field{Type: roomType},
		"guest":        &graphql.Field{Type: guestType},
	},
})

// NewSchema wires the resolver into the executable schema.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"reservation": &graphql.Field{
				Type: reservationType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.Reservation,
			},
			"reservations": &graphql.Field{
				Type:    graphql.NewList(reservationType),
				Resolve: r.Reservations,
			},
			"reservationsByGuest": &graphql.Field{
				Type: graphql.NewList(reservationType),
				Args: graphql.FieldConfigArgument{
					"guestId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.ReservationsByGuest,
			},
			"reservationsByRoom": &graphql.Field{
				Type: graphql.NewList(reservationType),
				Args: graphql.FieldConfigArgument{
					"roomId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.ReservationsByRoom,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createReservation": &graphql.Field{
				Type: graphql.NewNonNull(reservationType),
				Args: graphql.FieldConfigArgument{
					"guestId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"roomId":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"checkInDate":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(dateScalar)},
					"checkOutDate": &graphql.ArgumentConfig{Type: graphql.NewNonNull(dateScalar)},
					"status":       &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.CreateReservation,
			},
			"updateReservation": &graphql.Field{
				Type: reservationType,
				Args: graphql.FieldConfigArgument{
					"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"guestId":      &graphql.ArgumentConfig{Type: graphql.Int},
					"roomId":       &graphql.ArgumentConfig{Type: graphql.Int},
					"checkInDate":  &graphql.ArgumentConfig{Type: dateScalar},
					"checkOutDate": &graphql.ArgumentConfig{Type: dateScalar},
					"status":       &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.UpdateReservation,
			},
			"deleteReservation": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.DeleteReservation,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
