package config

import "github.com/nddiaye/centerpointe/internal/domain/models"

// DefaultParams returns the baseline Centerpointe parameter set. Values
// reflect observed operations: ~31K enrollment, 15.2% residential, a
// five-plan catalogue, and the corrected payment/revenue splits where meal
// swipes dominate volume but contribute no immediate cash revenue.
func DefaultParams() *Params {
	return &Params{
		Seed:         42,
		FacilityName: "Centerpointe Dining Commons",
		Population: PopulationParams{
			BaseEnrollment:   31000,
			BaseYear:         2024,
			GrowthRate:       0.022,
			ResidentialRatio: 0.152,
			Participation: ParticipationRates{
				ResidentialMandatory: 1.0,
				CommuterVoluntary:    0.078,
				FacultyStaff:         0.012,
			},
			SeasonalVariation: map[string]float64{
				models.PeriodFallSemester:       1.0,
				models.PeriodSpringSemester:     0.96,
				models.PeriodSummerSession:      0.32,
				models.PeriodWinterIntersession: 0.08,
			},
		},
		MealPlans: MealPlanParams{
			Plans: map[string]MealPlan{
				"Unlimited": {
					CostPerSemester:     2611,
					SwipesPerSemester:   0,
					DiningDollars:       250,
					TypicalDailyUsage:   0.32,
					UtilizationRate:     0.847,
					StudentDistribution: 0.28,
				},
				"Block_220": {
					CostPerSemester:     2895,
					SwipesPerSemester:   220,
					DiningDollars:       460,
					TypicalDailyUsage:   0.25,
					UtilizationRate:     0.923,
					StudentDistribution: 0.24,
				},
				"Block_180": {
					CostPerSemester:     2781,
					SwipesPerSemester:   180,
					DiningDollars:       560,
					TypicalDailyUsage:   0.20,
					UtilizationRate:     0.891,
					StudentDistribution: 0.26,
				},
				"Block_140": {
					CostPerSemester:     2611,
					SwipesPerSemester:   140,
					DiningDollars:       660,
					TypicalDailyUsage:   0.16,
					UtilizationRate:     0.874,
					StudentDistribution: 0.17,
				},
				"Suites_Flex": {
					CostPerSemester:     1915,
					SwipesPerSemester:   70,
					DiningDollars:       750,
					TypicalDailyUsage:   0.08,
					UtilizationRate:     0.756,
					StudentDistribution: 0.05,
				},
			},
		},
		Hours: OperatingHours{
			AcademicYear: WeekSchedule{
				Weekday: DaySchedule{Periods: map[string]Window{
					"breakfast":  {Open: 7.0, Close: 10.0},
					"lunch":      {Open: 10.75, Close: 14.5},
					"dinner":     {Open: 17.0, Close: 19.5},
					"late_night": {Open: 21.0, Close: 23.0},
				}},
				Weekend: DaySchedule{Periods: map[string]Window{
					"brunch":     {Open: 11.0, Close: 15.0},
					"dinner":     {Open: 17.0, Close: 19.5},
					"late_night": {Open: 21.0, Close: 22.5},
				}},
			},
			SummerSession: WeekSchedule{
				Weekday: DaySchedule{Periods: map[string]Window{
					"lunch":  {Open: 11.0, Close: 14.0},
					"dinner": {Open: 17.0, Close: 19.0},
				}},
				Weekend: DaySchedule{Periods: map[string]Window{
					"lunch":  {Open: 11.5, Close: 14.0},
					"dinner": {Open: 17.0, Close: 18.5},
				}},
			},
			BreakPeriods: WeekSchedule{
				Weekday: DaySchedule{Periods: map[string]Window{
					"lunch": {Open: 11.5, Close: 13.5},
				}},
				Weekend: DaySchedule{Closed: true},
			},
		},
		Calendar: CalendarParams{
			Semesters: SemesterDates{
				FallStart:   models.MonthDay{Month: 8, Day: 20},
				FallEnd:     models.MonthDay{Month: 12, Day: 15},
				SpringStart: models.MonthDay{Month: 1, Day: 15},
				SpringEnd:   models.MonthDay{Month: 5, Day: 15},
				SummerStart: models.MonthDay{Month: 6, Day: 1},
				SummerEnd:   models.MonthDay{Month: 8, Day: 15},
			},
			SpecialPeriods: []SpecialPeriod{
				{
					Name:        models.PeriodMoveInWeek,
					Start:       models.MonthDay{Month: 8, Day: 15},
					End:         models.MonthDay{Month: 8, Day: 22},
					Multiplier:  1.28,
					Description: "New students exploring dining options",
				},
				{
					Name:        models.PeriodFinalsWeeks,
					Start:       models.MonthDay{Month: 12, Day: 8},
					End:         models.MonthDay{Month: 12, Day: 15},
					Multiplier:  1.16,
					Description: "Extended hours, stress eating, all-nighters",
				},
				{
					Name:        models.PeriodFinalsWeeks,
					Start:       models.MonthDay{Month: 5, Day: 8},
					End:         models.MonthDay{Month: 5, Day: 15},
					Multiplier:  1.16,
					Description: "Extended hours, stress eating, all-nighters",
				},
				{
					Name:        models.PeriodSpringBreak,
					Start:       models.MonthDay{Month: 3, Day: 18},
					End:         models.MonthDay{Month: 3, Day: 25},
					Multiplier:  0.31,
					Description: "Most students away",
				},
				{
					Name:        models.PeriodWinterIntersession,
					Start:       models.MonthDay{Month: 12, Day: 16},
					End:         models.MonthDay{Month: 1, Day: 14},
					Multiplier:  0.09,
					Description: "Minimal campus population",
				},
				{
					Name:        models.PeriodThanksgivingWeek,
					Start:       models.MonthDay{Month: 11, Day: 23},
					End:         models.MonthDay{Month: 11, Day: 29},
					Multiplier:  0.45,
					Description: "Many students travel home",
				},
			},
			WeeklyPatterns: WeeklyPatterns{
				Monday:    0.92,
				Tuesday:   1.05,
				Wednesday: 1.08,
				Thursday:  1.03,
				Friday:    0.89,
				Saturday:  0.71,
				Sunday:    0.82,
			},
			RegularMultipliers: RegularMultipliers{
				FallSemester:   1.0,
				SpringSemester: 0.96,
				SummerSession:  0.32,
				WinterBreak:    0.09,
				Unknown:        0.5,
			},
		},
		Environment: EnvironmentParams{
			Weather: WeatherParams{
				SeasonalProbabilities: map[string][]float64{
					"winter": {0.58, 0.27, 0.14, 0.01},
					"spring": {0.72, 0.19, 0.08, 0.01},
					"summer": {0.79, 0.17, 0.02, 0.02},
					"fall":   {0.71, 0.22, 0.06, 0.01},
				},
				Impacts: map[models.WeatherCategory]float64{
					models.WeatherSunny:       1.0,
					models.WeatherCloudy:      1.023,
					models.WeatherRainy:       1.147,
					models.WeatherExtremeHeat: 0.891,
				},
			},
			Events: EventParams{
				Profiles: map[models.EventCategory]EventProfile{
					models.EventRegularDay: {Probability: 0.823, Impact: 1.0},
					models.EventClubFair: {
						Probability:  0.025,
						Impact:       1.34,
						TypicalDates: []models.MonthDay{{Month: 9, Day: 5}, {Month: 1, Day: 25}},
					},
					models.EventCareerFair: {
						Probability:  0.018,
						Impact:       1.23,
						TypicalDates: []models.MonthDay{{Month: 10, Day: 15}, {Month: 2, Day: 20}},
					},
					models.EventSportsEvents: {Probability: 0.047, Impact: 1.12},
					models.EventGraduation: {
						Probability:  0.008,
						Impact:       1.43,
						TypicalDates: []models.MonthDay{{Month: 12, Day: 16}, {Month: 5, Day: 18}},
					},
					models.EventParentWeekend: {
						Probability:  0.012,
						Impact:       1.38,
						TypicalDates: []models.MonthDay{{Month: 10, Day: 12}},
					},
					models.EventProspectiveStudentDay: {Probability: 0.015, Impact: 1.19},
					models.EventConferenceHosting:     {Probability: 0.032, Impact: 1.16},
					models.EventCampusConstruction:    {Probability: 0.020, Impact: 0.94},
				},
			},
		},
		Transactions: TransactionParams{
			PaymentMethods: PaymentMethodRates{
				MealSwipes:    0.978,
				DiningDollars: 0.014,
				BroncoBucks:   0.005,
				CreditDebit:   0.003,
			},
			MealPeriods: MealPeriodRates{
				Breakfast: 0.18,
				Lunch:     0.52,
				Dinner:    0.27,
				LateNight: 0.03,
			},
			GuestMultiplier: 0.05,
			Revenue: RevenueParams{
				SwipeImmediateRevenue:    0.0,
				DollarTransactionAverage: 12.54,
				IncludeMealPlanRevenue:   false,
				LegacyAverageValue:       13.25,
			},
			PlatformPopularity: map[string]float64{
				"Between_Two_Slices": 0.148,
				"Firehouse":          0.142,
				"Fusion_Bar":         0.181,
				"Gone_Global":        0.119,
				"Charred":            0.134,
				"Sweet_Spot":         0.083,
				"Sushi_Bar":          0.097,
				"Salad_Bar":          0.096,
			},
		},
		Staffing: StaffingParams{
			Roles: map[models.Role]RoleParams{
				models.RoleFOHGeneral: {
					Description:          "Customer service, food serving, cleaning",
					BaseHoursPerPeriod:   5.0,
					VolumeScalingFactor:  1.23,
					MinimumCoverageHours: 4.0,
					PeakHourMultiplier:   1.20,
					Efficiency:           EfficiencyFactors{Experienced: 0.95, NewHires: 0.65, StudentWorkers: 0.80},
				},
				models.RoleFOHCashier: {
					Description:          "Transaction processing, guest relations, biometric system",
					BaseHoursPerPeriod:   2.5,
					VolumeScalingFactor:  1.14,
					MinimumCoverageHours: 2.0,
					PeakHourMultiplier:   1.15,
					Efficiency:           EfficiencyFactors{Experienced: 1.00, NewHires: 0.65, StudentWorkers: 0.85},
				},
				models.RoleKitchenPrep: {
					Description:          "Food preparation, ingredient processing, station setup",
					BaseHoursPerPeriod:   7.0,
					VolumeScalingFactor:  0.91,
					MinimumCoverageHours: 6.0,
					PeakHourMultiplier:   1.08,
					Efficiency:           EfficiencyFactors{Experienced: 1.05, NewHires: 0.60, StudentWorkers: 0.75},
				},
				models.RoleKitchenLine: {
					Description:          "Active cooking, food assembly, platform management",
					BaseHoursPerPeriod:   9.0,
					VolumeScalingFactor:  1.02,
					MinimumCoverageHours: 8.0,
					PeakHourMultiplier:   1.10,
					Efficiency:           EfficiencyFactors{Experienced: 1.00, NewHires: 0.65, StudentWorkers: 0.78},
				},
				models.RoleDishRoom: {
					Description:          "Dishwashing, sanitation, equipment cleaning",
					BaseHoursPerPeriod:   3.5,
					VolumeScalingFactor:  1.17,
					MinimumCoverageHours: 3.0,
					PeakHourMultiplier:   1.20,
					Efficiency:           EfficiencyFactors{Experienced: 1.00, NewHires: 0.70, StudentWorkers: 0.85},
				},
				models.RoleManagement: {
					Description:          "Supervision, coordination, problem resolution",
					BaseHoursPerPeriod:   2.0,
					VolumeScalingFactor:  0.82,
					MinimumCoverageHours: 1.5,
					PeakHourMultiplier:   1.05,
					Efficiency:           EfficiencyFactors{Experienced: 1.10, NewHires: 0.80, StudentWorkers: 0.0},
				},
			},
			LaborCosts: LaborCostParams{
				AverageHourlyRate: 18.75,
				StudentWorkerRate: 16.50,
				ExperiencedRate:   21.25,
				ManagementRate:    28.50,
			},
		},
		Facility: FacilityParams{
			MaxCapacity:         680,
			SquareFootage:       35000,
			DiningPlatforms:     8,
			ScannerThroughput:   45,
			PeakHourDuration:    3.0,
			KitchenPrepCapacity: 2400,
			DishRoomCapacity:    950,
		},
	}
}
