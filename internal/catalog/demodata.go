package catalog

import "movie-explorer-service/internal/models"

// demoTrending is the fallback search result set.
var demoTrending = []models.Movie{
	{
		ID:           1,
		Title:        "The Avengers",
		Overview:     "Earth's Mightiest Heroes stand as the planet's first line of defense against the most powerful threats in the universe.",
		PosterPath:   "/RYMX2wcKCBAr24UyPD7xwmjaTn.jpg",
		BackdropPath: "/9BBTo63ANSmhC4e6r62OJFuK2GL.jpg",
		ReleaseDate:  "2012-04-25",
		VoteAverage:  7.7,
		VoteCount:    29000,
		GenreIDs:     []int{28, 12, 878},
	},
	{
		ID:           2,
		Title:        "The Dark Knight",
		Overview:     "Batman raises the stakes in his war on crime with the help of Lt. Jim Gordon and District Attorney Harvey Dent.",
		PosterPath:   "/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		BackdropPath: "/dqK9Hag1054tghRQSqLSfrkvQnA.jpg",
		ReleaseDate:  "2008-07-16",
		VoteAverage:  9.0,
		VoteCount:    32000,
		GenreIDs:     []int{28, 80, 18},
	},
	{
		ID:           3,
		Title:        "Inception",
		Overview:     "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
		PosterPath:   "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		BackdropPath: "/s3TBrRGB1iav7gFOCNx3H31MoES.jpg",
		ReleaseDate:  "2010-07-15",
		VoteAverage:  8.8,
		VoteCount:    35000,
		GenreIDs:     []int{28, 878, 53},
	},
	{
		ID:           4,
		Title:        "Star Wars: A New Hope",
		Overview:     "Luke Skywalker joins forces with a Jedi Knight, a cocky pilot, a Wookiee and two droids to save the galaxy.",
		PosterPath:   "/6FfCtAuVAW8XJjZ7eWeLibRLWTw.jpg",
		BackdropPath: "/4iJfYYoQzZcONB9hNzg0J0wWyPH.jpg",
		ReleaseDate:  "1977-05-25",
		VoteAverage:  8.6,
		VoteCount:    20000,
		GenreIDs:     []int{12, 878, 28},
	},
	{
		ID:           5,
		Title:        "Iron Man",
		Overview:     "After being held captive in an Afghan cave, billionaire engineer Tony Stark creates a unique weaponized suit of armor.",
		PosterPath:   "/78lPtwv72eTNqFW9COBYI0dWDJa.jpg",
		BackdropPath: "/9Ic1yGjoER35VKLhCc2y1OvLh5e.jpg",
		ReleaseDate:  "2008-04-30",
		VoteAverage:  7.9,
		VoteCount:    24000,
		GenreIDs:     []int{28, 12, 878},
	},
	{
		ID:           6,
		Title:        "Harry Potter and the Philosopher's Stone",
		Overview:     "An orphaned boy enrolls in a school of wizardry, where he learns the truth about himself, his family and his terrible fate.",
		PosterPath:   "/wuMc08IPKEatf9rnMNXvIDxqP4W.jpg",
		BackdropPath: "/hziiv14OpD73u9gAak4XDDfBKa2.jpg",
		ReleaseDate:  "2001-11-04",
		VoteAverage:  7.9,
		VoteCount:    26000,
		GenreIDs:     []int{12, 14, 10751},
	},
	{
		ID:           7,
		Title:        "Avatar",
		Overview:     "A paraplegic Marine dispatched to the moon Pandora on a unique mission becomes torn between following his orders and protecting the world.",
		PosterPath:   "/jRXYjXNq0Cs2TcJjLkki24MLp7u.jpg",
		BackdropPath: "/Yc9q6QuWrMp9nuDm5R8ExNqbEWU.jpg",
		ReleaseDate:  "2009-12-10",
		VoteAverage:  7.8,
		VoteCount:    31000,
		GenreIDs:     []int{28, 12, 878, 14},
	},
	{
		ID:           8,
		Title:        "Titanic",
		Overview:     "101-year-old Rose DeWitt Bukater tells the story of her life aboard the Titanic, 84 years later.",
		PosterPath:   "/9xjZS2rlVxm8SFx8kPC3aIGCOYQ.jpg",
		BackdropPath: "/qgd6wl7sZEFE0Ux1zz3USbWwLYA.jpg",
		ReleaseDate:  "1997-11-18",
		VoteAverage:  7.9,
		VoteCount:    23000,
		GenreIDs:     []int{18, 10749},
	},
}

// demoExtra holds demo movies outside the trending set.
var demoExtra = []models.Movie{
	{
		ID:           9,
		Title:        "The Godfather",
		Overview:     "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
		PosterPath:   "/3bhkrj58Vtu7enYsRolD1fZdja1.jpg",
		BackdropPath: "/tmU7GeKVybMWFButWEGl2M4GeiP.jpg",
		ReleaseDate:  "1972-03-14",
		VoteAverage:  9.2,
		VoteCount:    19000,
		GenreIDs:     []int{18, 80},
	},
}

// demoDetails carries the full detail projections available in demo mode.
var demoDetails = map[int]models.Movie{
	1: {
		ID:           1,
		Title:        "The Avengers",
		Overview:     "Earth's Mightiest Heroes stand as the planet's first line of defense against the most powerful threats in the universe. When Nick Fury, director of the international peacekeeping agency known as S.H.I.E.L.D., finds himself in need of a team to pull the world back from the brink of disaster, he and Agent Coulson begin assembling a team of superheroes.",
		PosterPath:   "/RYMX2wcKCBAr24UyPD7xwmjaTn.jpg",
		BackdropPath: "/9BBTo63ANSmhC4e6r62OJFuK2GL.jpg",
		ReleaseDate:  "2012-04-25",
		VoteAverage:  7.7,
		VoteCount:    29000,
		Runtime:      143,
		Genres: []models.Genre{
			{ID: 28, Name: "Action"},
			{ID: 12, Name: "Adventure"},
			{ID: 878, Name: "Science Fiction"},
		},
		Tagline: "Some assembly required.",
		Budget:  220000000,
		Revenue: 1518812988,
	},
	2: {
		ID:           2,
		Title:        "The Dark Knight",
		Overview:     "Batman raises the stakes in his war on crime. With the help of Lt. Jim Gordon and District Attorney Harvey Dent, Batman sets out to dismantle the remaining criminal organizations that plague the streets. The partnership proves to be effective, but they soon find themselves prey to a reign of chaos unleashed by a rising criminal mastermind known to the terrified citizens of Gotham as the Joker.",
		PosterPath:   "/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		BackdropPath: "/dqK9Hag1054tghRQSqLSfrkvQnA.jpg",
		ReleaseDate:  "2008-07-16",
		VoteAverage:  9.0,
		VoteCount:    32000,
		Runtime:      152,
		Genres: []models.Genre{
			{ID: 28, Name: "Action"},
			{ID: 80, Name: "Crime"},
			{ID: 18, Name: "Drama"},
		},
		Tagline: "Welcome to a world without rules.",
		Budget:  185000000,
		Revenue: 1004558444,
	},
	3: {
		ID:           3,
		Title:        "Inception",
		Overview:     "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O. But his rare ability has made him a coveted player in this treacherous new world of corporate espionage, but it has also made him an international fugitive and cost him everything he has ever loved.",
		PosterPath:   "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		BackdropPath: "/s3TBrRGB1iav7gFOCNx3H31MoES.jpg",
		ReleaseDate:  "2010-07-15",
		VoteAverage:  8.8,
		VoteCount:    35000,
		Runtime:      148,
		Genres: []models.Genre{
			{ID: 28, Name: "Action"},
			{ID: 878, Name: "Science Fiction"},
			{ID: 53, Name: "Thriller"},
		},
		Tagline: "Your mind is the scene of the crime.",
		Budget:  160000000,
		Revenue: 836836967,
	},
	4: {
		ID:           4,
		Title:        "Star Wars: A New Hope",
		Overview:     "Princess Leia is captured and held hostage by the evil Imperial forces in their effort to take over the galactic Empire. Venturesome Luke Skywalker and dashing captain Han Solo team together with the loveable robot duo R2-D2 and C-3PO to rescue the beautiful princess and restore peace and justice in the Empire.",
		PosterPath:   "/6FfCtAuVAW8XJjZ7eWeLibRLWTw.jpg",
		BackdropPath: "/4iJfYYoQzZcONB9hNzg0J0wWyPH.jpg",
		ReleaseDate:  "1977-05-25",
		VoteAverage:  8.6,
		VoteCount:    20000,
		Runtime:      121,
		Genres: []models.Genre{
			{ID: 12, Name: "Adventure"},
			{ID: 878, Name: "Science Fiction"},
			{ID: 28, Name: "Action"},
		},
		Tagline: "A long time ago in a galaxy far, far away...",
		Budget:  11000000,
		Revenue: 775398007,
	},
	5: {
		ID:           5,
		Title:        "Iron Man",
		Overview:     "After being held captive in an Afghan cave, billionaire engineer Tony Stark creates a unique weaponized suit of armor to fight evil. Tony Stark is a billionaire industrialist and genius inventor who is kidnapped and forced to build a devastating weapon. Instead, using his intelligence and ingenuity, Tony builds a high-tech suit of armor and escapes captivity.",
		PosterPath:   "/78lPtwv72eTNqFW9COBYI0dWDJa.jpg",
		BackdropPath: "/9Ic1yGjoER35VKLhCc2y1OvLh5e.jpg",
		ReleaseDate:  "2008-04-30",
		VoteAverage:  7.9,
		VoteCount:    24000,
		Runtime:      126,
		Genres: []models.Genre{
			{ID: 28, Name: "Action"},
			{ID: 12, Name: "Adventure"},
			{ID: 878, Name: "Science Fiction"},
		},
		Tagline: "Heroes aren't born. They're built.",
		Budget:  140000000,
		Revenue: 585366247,
	},
}

// demoCollaborative is the fixed collaborative-filtering stub result.
var demoCollaborative = []models.Movie{
	{
		ID:          5,
		Title:       "Iron Man",
		Overview:    "After being held captive in an Afghan cave, billionaire engineer Tony Stark creates a unique weaponized suit of armor.",
		PosterPath:  "/78lPtwv72eTNqFW9COBYI0dWDJa.jpg",
		ReleaseDate: "2008-04-30",
		VoteAverage: 7.9,
		GenreIDs:    []int{28, 12, 878},
	},
	{
		ID:          3,
		Title:       "Inception",
		Overview:    "A thief who steals corporate secrets through dream-sharing technology.",
		PosterPath:  "/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		ReleaseDate: "2010-07-15",
		VoteAverage: 8.8,
		GenreIDs:    []int{28, 878, 53},
	},
	{
		ID:          4,
		Title:       "Star Wars: A New Hope",
		Overview:    "Luke Skywalker joins forces with a Jedi Knight to save the galaxy.",
		PosterPath:  "/6FfCtAuVAW8XJjZ7eWeLibRLWTw.jpg",
		ReleaseDate: "1977-05-25",
		VoteAverage: 8.6,
		GenreIDs:    []int{12, 878, 28},
	},
}

// demoGenreRecs backs DiscoverByGenre in demo mode. Ids are distinct from
// the trending set so the lists compose cleanly in the dedup pipeline.
var demoGenreRecs = []models.Movie{
	{
		ID:          10,
		Title:       "Captain America: The First Avenger",
		Overview:    "Steve Rogers transforms into Captain America after taking a Super-Soldier serum.",
		PosterPath:  "/vSNxAJTlD0r02V9sPYpOjqDZXUK.jpg",
		ReleaseDate: "2011-07-19",
		VoteAverage: 7.0,
		GenreIDs:    []int{28, 12, 878},
	},
	{
		ID:          11,
		Title:       "Thor",
		Overview:    "The Mighty Thor recklessly reignites an ancient war against his father Odin's will.",
		PosterPath:  "/bIuOWTtyFPjsFDevqvF3QrD1aun.jpg",
		ReleaseDate: "2011-04-21",
		VoteAverage: 7.0,
		GenreIDs:    []int{28, 12, 14},
	},
	{
		ID:          12,
		Title:       "Guardians of the Galaxy",
		Overview:    "A group of intergalactic criminals must pull together to stop a fanatical warrior.",
		PosterPath:  "/r7vmZjiyZw9rpJMQJdXpjgiCOk9.jpg",
		ReleaseDate: "2014-07-30",
		VoteAverage: 8.0,
		GenreIDs:    []int{28, 12, 878},
	},
}
