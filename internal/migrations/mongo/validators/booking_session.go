package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingSessionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"step",
			"draft",
			"created_at",
			"updated_at",
			"expires_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 64,
			},

			"step": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
				"maximum":  3,
			},

			"draft": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"area":          bson.M{"bsonType": "string", "maxLength": 50},
					"date":          bson.M{"bsonType": "string", "maxLength": 10},
					"time":          bson.M{"bsonType": "string", "maxLength": 5},
					"contact_name":  bson.M{"bsonType": "string", "maxLength": 100},
					"contact_phone": bson.M{"bsonType": "string", "maxLength": 30},
					"contact_email": bson.M{"bsonType": "string", "maxLength": 254},
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},

			"expires_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
