package sqlinline

const QInsertMeal = `--sql 5bfccbd4-3f66-4f07-8dde-788fb811a6b3
insert into meals (recipe_id, meal_type, servings, notes, created_at)
values ($1::bigint, $2::text, $3::int, $4::text, now())
returning meal_id, created_at;
`

const QUpdateMeal = `--sql f092ac0a-fa75-4358-b136-e9e066803724
update meals set recipe_id = $2::bigint, meal_type = $3::text, servings = $4::int, notes = $5::text
where meal_id = $1::bigint;
`

const QSelectMealByID = `--sql 4f0d91f5-c4a1-443f-8e5d-5f0f4d2a9326
select meal_id, recipe_id, meal_type, servings, notes, created_at
from meals
where meal_id = $1::bigint;
`

const QDeleteMealsByIDs = `--sql e4b5ad42-e940-486f-bf7a-70c13af560d4
delete from meals where meal_id = any($1::bigint[]);
`

const QSelectDailyPlanByUserDate = `--sql c70907e1-017d-4d45-8c38-25db02011090
select plan_id, user_id, plan_date, meal_ids, total_calories, total_protein, total_carbs, total_fat, total_fiber,
       max_prep_time, status, created_at
from daily_meal_plans
where user_id = $1::bigint and plan_date = $2::date;
`

const QSelectDailyPlanByID = `--sql c7245fee-bb1e-435a-8d85-a06408be7e01
select plan_id, user_id, plan_date, meal_ids, total_calories, total_protein, total_carbs, total_fat, total_fiber,
       max_prep_time, status, created_at
from daily_meal_plans
where plan_id = $1::bigint;
`

const QSelectDailyPlans = `--sql a1617d10-1687-4bd3-88fd-5adf50775c0b
select plan_id, user_id, plan_date, meal_ids, total_calories, total_protein, total_carbs, total_fat, total_fiber,
       max_prep_time, status, created_at
from daily_meal_plans
where user_id = $1::bigint
  and ($2::date is null or plan_date >= $2::date)
  and ($3::date is null or plan_date <= $3::date)
  and ($4::text = '' or status = $4::text)
order by plan_date;
`

const QUpsertDailyPlan = `--sql 27c46d41-cd96-4aa6-9d66-6cc9ccbdd77b
insert into daily_meal_plans (user_id, plan_date, meal_ids, total_calories, total_protein, total_carbs, total_fat, total_fiber,
                              max_prep_time, status, created_at)
values ($1::bigint, $2::date, $3::bigint[], $4::float8, $5::float8, $6::float8, $7::float8, $8::float8, $9::int, $10::text, now())
on conflict (user_id, plan_date) do update set
    meal_ids = excluded.meal_ids,
    total_calories = excluded.total_calories,
    total_protein = excluded.total_protein,
    total_carbs = excluded.total_carbs,
    total_fat = excluded.total_fat,
    total_fiber = excluded.total_fiber,
    max_prep_time = excluded.max_prep_time,
    status = excluded.status
returning plan_id, created_at;
`

const QUpdateDailyPlan = `--sql 97e345e1-3516-4d42-9f87-3988e658603f
update daily_meal_plans set
    meal_ids = $2::bigint[],
    total_calories = $3::float8,
    total_protein = $4::float8,
    total_carbs = $5::float8,
    total_fat = $6::float8,
    total_fiber = $7::float8,
    max_prep_time = $8::int,
    status = $9::text
where plan_id = $1::bigint;
`

const QUpdateDailyPlanStatus = `--sql 99431d69-6320-4d68-8faf-685540dcc342
update daily_meal_plans set status = $2::text where plan_id = $1::bigint;
`

const QDeleteDailyPlan = `--sql 44ae6fb2-4b54-4782-ac9a-a984d77780d7
delete from daily_meal_plans where plan_id = $1::bigint
returning meal_ids;
`

const QInsertWeeklyPlan = `--sql faeb5dd5-8012-4f08-9bed-5dab535c6f08
insert into weekly_meal_plans (user_id, start_date, end_date, daily_plan_ids, avg_daily_calories, avg_daily_protein,
                               avg_daily_carbs, avg_daily_fat, status, created_at)
values ($1::bigint, $2::date, $3::date, $4::bigint[], $5::float8, $6::float8, $7::float8, $8::float8, $9::text, now())
returning weekly_plan_id, created_at;
`

const QSelectWeeklyPlanByID = `--sql 2317ca36-0f2f-4012-9637-b0f3644fd4f0
select weekly_plan_id, user_id, start_date, end_date, daily_plan_ids, avg_daily_calories, avg_daily_protein,
       avg_daily_carbs, avg_daily_fat, status, created_at
from weekly_meal_plans
where weekly_plan_id = $1::bigint;
`

const QSelectWeeklyPlans = `--sql 8da9c387-6698-49f7-9da9-7984f0dbf3c8
select weekly_plan_id, user_id, start_date, end_date, daily_plan_ids, avg_daily_calories, avg_daily_protein,
       avg_daily_carbs, avg_daily_fat, status, created_at
from weekly_meal_plans
where user_id = $1::bigint
  and ($2::date is null or end_date >= $2::date)
  and ($3::date is null or start_date <= $3::date)
  and ($4::text = '' or status = $4::text)
order by start_date;
`

const QUpdateWeeklyPlanStatus = `--sql ce8d4cc2-5b42-40b3-a3a6-b54ed31c7cb6
update weekly_meal_plans set status = $2::text where weekly_plan_id = $1::bigint;
`

const QDeleteWeeklyPlan = `--sql ae09d36b-89a3-4cb4-b44a-7052ba128d78
delete from weekly_meal_plans where weekly_plan_id = $1::bigint;
`
